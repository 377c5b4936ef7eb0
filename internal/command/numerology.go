package command

import (
	"context"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/numerology"
	"github.com/kapu/namevibes-bot/internal/service/reading"
)

type NumerologyCommand struct {
	deps *Dependencies
}

func NewNumerologyCommand(deps *Dependencies) *NumerologyCommand {
	return &NumerologyCommand{deps: deps}
}

func (c *NumerologyCommand) Name() string {
	return domain.CommandNumerology.String()
}

func (c *NumerologyCommand) Description() string {
	return "이름의 수비학 숫자를 계산합니다"
}

func (c *NumerologyCommand) Execute(_ context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	name, err := reading.ValidateName(stringParam(params, "name"))
	if err != nil {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatUsage("수비학", "[이름] [--chaldean]"))
	}

	system, ok := params["system"].(numerology.System)
	if !ok {
		system = numerology.Pythagorean
	}

	profile := numerology.CalculateProfile(name, system)
	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatNumerology(name, profile))
}
