package command

import (
	"context"
	"time"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/service/reading"
	"github.com/kapu/namevibes-bot/internal/zodiac"
)

type ZodiacCommand struct {
	deps *Dependencies
}

func NewZodiacCommand(deps *Dependencies) *ZodiacCommand {
	return &ZodiacCommand{deps: deps}
}

func (c *ZodiacCommand) Name() string {
	return domain.CommandZodiac.String()
}

func (c *ZodiacCommand) Description() string {
	return "이름 음절의 낙샤트라와 생일 별자리를 알려줍니다"
}

func (c *ZodiacCommand) Execute(_ context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	name, err := reading.ValidateName(stringParam(params, "name"))
	if err != nil {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatUsage("별자리", "[이름] [YYYY-MM-DD]"))
	}

	var match *zodiac.Match
	if m, ok := zodiac.NakshatraForName(name); ok {
		match = &m
	}

	var sun *zodiac.Sign
	if birth, ok := params["birth"].(time.Time); ok {
		sign, err := zodiac.SunSign(birth.Month(), birth.Day())
		if err != nil {
			return replyFailure(c.deps, cmdCtx.Room, "별자리 계산", err)
		}
		sun = &sign
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatZodiac(name, match, sun))
}
