package command

import (
	"context"

	"github.com/kapu/namevibes-bot/internal/domain"
)

type HelpCommand struct {
	deps *Dependencies
}

func NewHelpCommand(deps *Dependencies) *HelpCommand {
	return &HelpCommand{deps: deps}
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "사용 가능한 명령어를 안내합니다"
}

// Execute sends the general help, or the detail page when a "topic" command type is given.
func (c *HelpCommand) Execute(_ context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	if topic, ok := params["topic"].(domain.CommandType); ok {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatTopicHelp(topic))
	}
	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatHelp())
}
