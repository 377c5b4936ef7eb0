package domain

type CommandType string

const (
	CommandElements   CommandType = "elements"
	CommandNumerology CommandType = "numerology"
	CommandZodiac     CommandType = "zodiac"
	CommandVibe       CommandType = "vibe"
	CommandTop        CommandType = "top"
	CommandTable      CommandType = "table"
	CommandHelp       CommandType = "help"
	CommandUnknown    CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

func (c CommandType) IsValid() bool {
	switch c {
	case CommandElements, CommandNumerology, CommandZodiac, CommandVibe,
		CommandTop, CommandTable, CommandHelp, CommandUnknown:
		return true
	default:
		return false
	}
}
