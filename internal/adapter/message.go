package adapter

import (
	"strconv"
	"strings"
	"time"

	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
	"github.com/kapu/namevibes-bot/internal/iris"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/util"
)

const birthDateLayout = "2006-01-02"

var (
	elementsAliases   = []string{"원소", "element", "elements", "el"}
	numerologyAliases = []string{"수비학", "numerology", "num"}
	zodiacAliases     = []string{"별자리", "zodiac", "rashi"}
	vibeAliases       = []string{"바이브", "vibe", "vibes"}
	topAliases        = []string{"랭킹", "top", "rank"}
	tableAliases      = []string{"주기율표", "table", "원소기호"}
	helpAliases       = []string{"도움말", "도움", "help", "명령어", "commands"}
)

// MessageAdapter converts KakaoTalk messages to bot commands
type MessageAdapter struct {
	prefix string
}

func NewMessageAdapter(prefix string) *MessageAdapter {
	if strings.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	return &MessageAdapter{prefix: prefix}
}

// ParsedCommand represents a parsed command. Prefixed is false for ordinary
// chat lines, which the bot ignores.
type ParsedCommand struct {
	Type       domain.CommandType
	Params     map[string]any
	RawMessage string
	Prefixed   bool
}

// ParseMessage parses a KakaoTalk message into a command
func (ma *MessageAdapter) ParseMessage(message *iris.Message) *ParsedCommand {
	if message == nil {
		return ma.unknown("", false)
	}
	return ma.ParseText(message.Text())
}

// ParseText parses a raw chat line.
func (ma *MessageAdapter) ParseText(text string) *ParsedCommand {
	text = strings.TrimSpace(text)
	if text == "" || !strings.HasPrefix(text, ma.prefix) {
		return ma.unknown(text, false)
	}

	parts := strings.Fields(text[len(ma.prefix):])
	if len(parts) == 0 {
		return ma.unknown(text, true)
	}

	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch {
	case util.Contains(elementsAliases, command):
		return ma.parsed(domain.CommandElements, nameParams(args), text)
	case util.Contains(numerologyAliases, command):
		return ma.parsed(domain.CommandNumerology, parseNumerologyArgs(args), text)
	case util.Contains(zodiacAliases, command):
		return ma.parsed(domain.CommandZodiac, parseZodiacArgs(args), text)
	case util.Contains(vibeAliases, command):
		return ma.parsed(domain.CommandVibe, nameParams(args), text)
	case util.Contains(topAliases, command):
		return ma.parsed(domain.CommandTop, parseTopArgs(args), text)
	case util.Contains(tableAliases, command):
		return ma.parsed(domain.CommandTable, parseTableArgs(args), text)
	case util.Contains(helpAliases, command):
		return ma.parsed(domain.CommandHelp, parseHelpArgs(args), text)
	default:
		return ma.unknown(text, true)
	}
}

func (ma *MessageAdapter) parsed(cmdType domain.CommandType, params map[string]any, raw string) *ParsedCommand {
	return &ParsedCommand{
		Type:       cmdType,
		Params:     params,
		RawMessage: raw,
		Prefixed:   true,
	}
}

func (ma *MessageAdapter) unknown(text string, prefixed bool) *ParsedCommand {
	return &ParsedCommand{
		Type:       domain.CommandUnknown,
		Params:     map[string]any{},
		RawMessage: text,
		Prefixed:   prefixed,
	}
}

// commandAliases maps each topic command to its aliases for "!도움말 <명령어>".
var commandAliases = map[domain.CommandType][]string{
	domain.CommandElements:   elementsAliases,
	domain.CommandNumerology: numerologyAliases,
	domain.CommandZodiac:     zodiacAliases,
	domain.CommandVibe:       vibeAliases,
	domain.CommandTop:        topAliases,
	domain.CommandTable:      tableAliases,
}

// parseHelpArgs resolves an optional command name into a help topic.
// Unrecognised topics fall back to the general help.
func parseHelpArgs(args []string) map[string]any {
	if len(args) == 0 {
		return map[string]any{}
	}
	word := strings.ToLower(strings.TrimPrefix(args[0], "!"))
	for cmdType, aliases := range commandAliases {
		if util.Contains(aliases, word) {
			return map[string]any{"topic": cmdType}
		}
	}
	return map[string]any{}
}

func nameParams(args []string) map[string]any {
	params := map[string]any{}
	if name := util.CleanInput(strings.Join(args, " ")); name != "" {
		params["name"] = name
	}
	return params
}

// parseNumerologyArgs accepts --chaldean/--pythagorean (or -c/-p) anywhere.
func parseNumerologyArgs(args []string) map[string]any {
	system := numerology.Pythagorean
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "--chaldean", "-c", "칼데아":
			system = numerology.Chaldean
		case "--pythagorean", "-p", "피타고라스":
			system = numerology.Pythagorean
		default:
			rest = append(rest, arg)
		}
	}
	params := nameParams(rest)
	params["system"] = system
	return params
}

// parseZodiacArgs treats a trailing YYYY-MM-DD as the birth date.
func parseZodiacArgs(args []string) map[string]any {
	if len(args) > 0 {
		if birth, err := time.Parse(birthDateLayout, args[len(args)-1]); err == nil {
			params := nameParams(args[:len(args)-1])
			params["birth"] = birth
			return params
		}
	}
	return nameParams(args)
}

func parseTopArgs(args []string) map[string]any {
	limit := constants.Limits.DefaultRanking
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > constants.Limits.MaxRankingSize {
		limit = constants.Limits.MaxRankingSize
	}
	return map[string]any{"limit": limit}
}

// parseTableArgs accepts a symbol in any case or an atomic number.
func parseTableArgs(args []string) map[string]any {
	if len(args) == 0 {
		return map[string]any{}
	}
	if n, err := strconv.Atoi(args[0]); err == nil {
		return map[string]any{"number": n}
	}
	return map[string]any{"symbol": element.CanonicalSymbol(args[0])}
}
