package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/service/reading"
	"github.com/kapu/namevibes-bot/internal/zodiac"
	"github.com/spf13/cobra"
)

const birthDateLayout = "2006-01-02"

func newParseCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <name>",
		Short:   "Spell a name with element symbols",
		Example: "  vibes parse John\n  vibes parse \"Marie Curie\" -o json",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := reading.Compute(strings.Join(args, " "))
			if err != nil {
				return err
			}
			analysis := element.Analyze(rd.Name)
			return opts.render(cmd.OutOrStdout(), analysis, func() string {
				return opts.formatter.FormatElements(rd)
			})
		},
	}
}

func newNumerologyCommand(opts *options) *cobra.Command {
	var systemName, birth string

	cmd := &cobra.Command{
		Use:     "numerology <name>",
		Short:   "Compute expression, soul urge and personality numbers",
		Example: "  vibes numerology Anna --system chaldean",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			system, err := numerology.ParseSystem(systemName)
			if err != nil {
				return err
			}
			name, err := reading.ValidateName(strings.Join(args, " "))
			if err != nil {
				return err
			}
			profile := numerology.CalculateProfile(name, system)

			out := struct {
				numerology.Profile `yaml:",inline"`
				LifePath           *numerology.Result `json:"life_path,omitempty" yaml:"life_path,omitempty"`
			}{Profile: profile}
			if birth != "" {
				t, err := time.Parse(birthDateLayout, birth)
				if err != nil {
					return fmt.Errorf("--birth must be YYYY-MM-DD: %w", err)
				}
				lp := numerology.LifePath(t)
				out.LifePath = &lp
			}

			return opts.render(cmd.OutOrStdout(), out, func() string {
				text := opts.formatter.FormatNumerology(name, profile)
				if out.LifePath != nil {
					text += fmt.Sprintf("\n생명수: %d", out.LifePath.Reduced)
				}
				return text
			})
		},
	}

	cmd.Flags().StringVarP(&systemName, "system", "s", string(numerology.Pythagorean), "Letter table (pythagorean|chaldean)")
	cmd.Flags().StringVar(&birth, "birth", "", "Birth date for the life path number (YYYY-MM-DD)")
	return cmd
}

func newZodiacCommand(opts *options) *cobra.Command {
	var birth string

	cmd := &cobra.Command{
		Use:     "zodiac <name>",
		Short:   "Find the nakshatra of a name and an optional sun sign",
		Example: "  vibes zodiac Nadia --birth 1990-07-30",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := reading.ValidateName(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := struct {
				Name      string        `json:"name" yaml:"name"`
				Nakshatra *zodiac.Match `json:"nakshatra" yaml:"nakshatra"`
				SunSign   *zodiac.Sign  `json:"sun_sign,omitempty" yaml:"sun_sign,omitempty"`
			}{Name: name}

			if m, ok := zodiac.NakshatraForName(name); ok {
				out.Nakshatra = &m
			}
			if birth != "" {
				t, err := time.Parse(birthDateLayout, birth)
				if err != nil {
					return fmt.Errorf("--birth must be YYYY-MM-DD: %w", err)
				}
				sign, err := zodiac.SunSign(t.Month(), t.Day())
				if err != nil {
					return err
				}
				out.SunSign = &sign
			}

			return opts.render(cmd.OutOrStdout(), out, func() string {
				return opts.formatter.FormatZodiac(name, out.Nakshatra, out.SunSign)
			})
		},
	}

	cmd.Flags().StringVar(&birth, "birth", "", "Birth date for the sun sign (YYYY-MM-DD)")
	return cmd
}

func newReadingCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reading <name>...",
		Short: "Compute full readings for one or more names",
		Long: `Compute the element spelling, both numerology systems and the nakshatra
for every name. Multi-word names must be quoted.`,
		Example: "  vibes reading Luna \"Marie Curie\" -o yaml",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readings := make([]*domain.Reading, 0, len(args))
			for _, name := range args {
				rd, err := reading.Compute(name)
				if err != nil {
					return fmt.Errorf("%q: %w", name, err)
				}
				readings = append(readings, rd)
			}

			var v any = readings
			if len(readings) == 1 {
				v = readings[0]
			}
			return opts.render(cmd.OutOrStdout(), v, func() string {
				parts := make([]string, len(readings))
				for i, rd := range readings {
					parts[i] = opts.formatter.FormatVibe(rd)
				}
				return strings.Join(parts, "\n\n")
			})
		},
	}
}

func newTableCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "table [symbol|number]",
		Short:   "Show the element table or a single element",
		Example: "  vibes table\n  vibes table fe\n  vibes table 26",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				all := element.All()
				return opts.render(cmd.OutOrStdout(), all, func() string {
					return elementTable(all)
				})
			}

			var (
				rec   element.Record
				found bool
			)
			if n, err := strconv.Atoi(args[0]); err == nil {
				rec, found = element.ByNumber(n)
			} else {
				rec, found = element.Lookup(element.CanonicalSymbol(args[0]))
			}
			if !found {
				return fmt.Errorf("no element %q", args[0])
			}
			return opts.render(cmd.OutOrStdout(), rec, func() string {
				return opts.formatter.FormatElementRecord(rec)
			})
		},
	}
}

func elementTable(records []element.Record) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Symbol", "Name", "Color"})
	for _, rec := range records {
		t.AppendRow(table.Row{rec.AtomicNumber, rec.Symbol, rec.Name, "#" + rec.ColorHex})
	}
	return t.Render()
}
