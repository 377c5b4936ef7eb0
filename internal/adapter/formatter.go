package adapter

import (
	"fmt"
	"strings"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/zodiac"
)

const templateFailureMessage = "❌ 응답을 만드는 중 문제가 발생했습니다."

// ResponseFormatter formats bot responses
type ResponseFormatter struct {
	prefix string
}

func NewResponseFormatter(prefix string) *ResponseFormatter {
	if strings.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	return &ResponseFormatter{prefix: prefix}
}

func (f *ResponseFormatter) FormatHelp() string {
	return f.render("help.tmpl", struct{ Prefix string }{f.prefix})
}

type helpTopic struct {
	Prefix  string
	Command string
	Args    string
	Summary string
	Notes   []string
	Aliases []string
	Example string
}

var helpTopics = map[domain.CommandType]helpTopic{
	domain.CommandElements: {
		Command: "원소", Args: "[이름]", Example: "NameVibes",
		Summary: "이름을 앞에서부터 가장 긴 원소 기호로 분해합니다.",
		Notes:   []string{"두 글자 기호를 먼저 시도합니다", "기호가 되지 못한 글자는 따로 표시됩니다"},
	},
	domain.CommandNumerology: {
		Command: "수비학", Args: "[이름] [--chaldean|--pythagorean]", Example: "Luna --chaldean",
		Summary: "이름의 표현수, 영혼수, 성격수를 계산합니다.",
		Notes:   []string{"기본은 피타고라스 방식입니다", "11, 22, 33은 마스터 수로 남깁니다"},
	},
	domain.CommandZodiac: {
		Command: "별자리", Args: "[이름] [YYYY-MM-DD]", Example: "Nadia 1990-07-30",
		Summary: "이름의 첫 음절로 낙샤트라를 찾습니다.",
		Notes:   []string{"생일을 붙이면 태양 별자리도 알려 줍니다"},
	},
	domain.CommandVibe: {
		Command: "바이브", Args: "[이름]", Example: "Luna",
		Summary: "원소, 수비학, 낙샤트라를 묶어 풀이하고 랭킹에 기록합니다.",
		Notes:   []string{"이름을 생략하면 보낸 사람의 닉네임을 씁니다"},
	},
	domain.CommandTop: {
		Command: "랭킹", Args: "[개수]", Example: "5",
		Summary: "가장 많이 풀이된 이름을 보여 줍니다.",
	},
	domain.CommandTable: {
		Command: "주기율표", Args: "[기호|번호]", Example: "Fe",
		Summary: "원소 하나의 번호, 색, 의미를 보여 줍니다.",
	},
}

// FormatTopicHelp describes one command in detail; unknown topics get the general help.
func (f *ResponseFormatter) FormatTopicHelp(topic domain.CommandType) string {
	t, ok := helpTopics[topic]
	if !ok {
		return f.FormatHelp()
	}
	t.Prefix = f.prefix
	t.Aliases = commandAliases[topic]
	return f.render("topic.tmpl", t)
}

// FormatElements lists the element symbols spelled by a reading.
func (f *ResponseFormatter) FormatElements(r *domain.Reading) string {
	return f.render("elements.tmpl", r)
}

// FormatVibe summarises a full reading, with its narrative when present.
func (f *ResponseFormatter) FormatVibe(r *domain.Reading) string {
	return f.render("vibe.tmpl", r)
}

func (f *ResponseFormatter) FormatNumerology(name string, p numerology.Profile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔢 %s 수비학 (%s)\n\n", name, systemLabel(p.System)))
	sb.WriteString(formatNumberLine("표현수", p.Expression))
	sb.WriteString(formatNumberLine("영혼수", p.SoulUrge))
	sb.WriteString(formatNumberLine("성격수", p.Personality))

	if meaning := numerology.Meaning(p.Expression.Reduced); meaning != "" {
		sb.WriteString(fmt.Sprintf("\n💡 %s", meaning))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (f *ResponseFormatter) FormatZodiac(name string, match *zodiac.Match, sun *zodiac.Sign) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🌙 %s 별자리\n", name))

	if match != nil {
		sb.WriteString(fmt.Sprintf("\n낙샤트라: %s (%d번) %d파다\n", match.Nakshatra, match.Number, match.Pada))
		sb.WriteString(fmt.Sprintf("첫 음절: %s → %s (%s)", match.Syllable, match.Rashi, match.Sign))
	} else {
		sb.WriteString("\n이름의 첫 음절에 해당하는 낙샤트라가 없습니다.")
	}

	if sun != nil {
		sb.WriteString(fmt.Sprintf("\n\n☀️ 태양 별자리: %s %s (%s)", sun.Symbol, sun.Name, elementLabel(sun.Element)))
	}
	return sb.String()
}

func (f *ResponseFormatter) FormatRanking(entries []domain.RankEntry) string {
	if len(entries) == 0 {
		return "📊 아직 기록된 이름이 없습니다."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 인기 이름 TOP %d\n", len(entries)))
	for i, e := range entries {
		symbols := element.Symbols(element.Parse(e.Normalized))
		line := fmt.Sprintf("\n%d. %s (%d회)", i+1, e.Normalized, e.Count)
		if len(symbols) > 0 {
			line += " " + strings.Join(symbols, "·")
		}
		sb.WriteString(line)
	}
	return sb.String()
}

func (f *ResponseFormatter) FormatElementRecord(rec element.Record) string {
	return fmt.Sprintf("⚛️ %s (%s)\n원자번호: %d\n색상: #%s\n\n%s",
		rec.Name, rec.Symbol, rec.AtomicNumber, rec.ColorHex, rec.Meaning)
}

func (f *ResponseFormatter) FormatUsage(command, example string) string {
	return fmt.Sprintf("ℹ️ 사용법: %s%s %s", f.prefix, command, example)
}

func (f *ResponseFormatter) FormatUnknownCommand() string {
	return fmt.Sprintf("❓ 알 수 없는 명령어입니다. %s도움말 을 입력해 보세요.", f.prefix)
}

// FormatError formats error message
func (f *ResponseFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

func (f *ResponseFormatter) render(name string, data any) string {
	out, err := executeFormatterTemplate(name, data)
	if err != nil {
		return templateFailureMessage
	}
	return out
}

func formatNumberLine(label string, r numerology.Result) string {
	master := ""
	if r.Master {
		master = " ✨마스터"
	}
	return fmt.Sprintf("%s: %d (합계 %d)%s\n", label, r.Reduced, r.Compound, master)
}

func systemLabel(s numerology.System) string {
	if s == numerology.Chaldean {
		return "칼데아"
	}
	return "피타고라스"
}

func elementLabel(e zodiac.Element) string {
	switch e {
	case zodiac.Fire:
		return "불"
	case zodiac.Earth:
		return "흙"
	case zodiac.Air:
		return "공기"
	case zodiac.Water:
		return "물"
	default:
		return string(e)
	}
}
