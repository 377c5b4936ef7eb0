package command

import (
	"context"

	"github.com/kapu/namevibes-bot/internal/domain"
)

type ElementsCommand struct {
	deps *Dependencies
}

func NewElementsCommand(deps *Dependencies) *ElementsCommand {
	return &ElementsCommand{deps: deps}
}

func (c *ElementsCommand) Name() string {
	return domain.CommandElements.String()
}

func (c *ElementsCommand) Description() string {
	return "이름을 원소 기호로 분해합니다"
}

func (c *ElementsCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	name := stringParam(params, "name")
	if name == "" {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatUsage("원소", "[이름]"))
	}

	reading, err := c.deps.Readings.Get(ctx, name)
	if err != nil {
		return replyFailure(c.deps, cmdCtx.Room, "원소 분석", err)
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatElements(reading))
}
