// Package cli provides the offline command-line interface for NameVibes.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kapu/namevibes-bot/internal/adapter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Version is set at build time.
var Version = "0.1.0"

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type options struct {
	output    string
	formatter *adapter.ResponseFormatter
}

// NewRootCmd creates the vibes command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{formatter: adapter.NewResponseFormatter("!")}

	rootCmd := &cobra.Command{
		Use:   "vibes",
		Short: "NameVibes - spell names with chemical elements",
		Long: `vibes reads a name the way the chat bot does: it spells it with element
symbols, computes Pythagorean and Chaldean numerology and finds the nakshatra
of its first syllable. Everything runs offline.`,
		Version: Version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			switch opts.output {
			case OutputText, OutputJSON, OutputYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q (text|json|yaml)", opts.output)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", OutputText, "Output format (text|json|yaml)")
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{OutputText, OutputJSON, OutputYAML}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newParseCommand(opts))
	rootCmd.AddCommand(newNumerologyCommand(opts))
	rootCmd.AddCommand(newZodiacCommand(opts))
	rootCmd.AddCommand(newReadingCommand(opts))
	rootCmd.AddCommand(newTableCommand(opts))
	rootCmd.AddCommand(NewMigrateCommand())

	return rootCmd
}

// render writes v as JSON or YAML, or text() in text mode.
func (o *options) render(w io.Writer, v any, text func() string) error {
	switch o.output {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, text())
		return err
	}
}
