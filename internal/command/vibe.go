package command

import (
	"context"
	stderrors "errors"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/service/ai"
	"github.com/kapu/namevibes-bot/pkg/errors"
	"go.uber.org/zap"
)

// VibeCommand records a full reading and replies with it, adding a narrative
// when one can be generated.
type VibeCommand struct {
	deps *Dependencies
}

func NewVibeCommand(deps *Dependencies) *VibeCommand {
	return &VibeCommand{deps: deps}
}

func (c *VibeCommand) Name() string {
	return domain.CommandVibe.String()
}

func (c *VibeCommand) Description() string {
	return "원소, 수비학, 별자리를 묶어 이름의 바이브를 풀이합니다"
}

func (c *VibeCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	name := stringParam(params, "name")
	if name == "" {
		name = cmdCtx.DefaultName()
	}
	if name == "" {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatUsage("바이브", "[이름]"))
	}

	r, err := c.deps.Readings.Record(ctx, name, "bot")
	if err != nil {
		var validation *errors.ValidationError
		if stderrors.As(err, &validation) {
			return c.deps.SendError(cmdCtx.Room, validation.Message)
		}

		// 저장 실패 시에도 결과는 보여준다
		c.deps.Logger.Warn("Failed to record reading", zap.String("name", name), zap.Error(err))
		if r, err = c.deps.Readings.Get(ctx, name); err != nil {
			return replyFailure(c.deps, cmdCtx.Room, "바이브 분석", err)
		}
	}

	if err := c.deps.Readings.Narrate(ctx, r); err != nil && !stderrors.Is(err, ai.ErrNarrativeDisabled) {
		c.deps.Logger.Warn("Narrative unavailable", zap.String("name", name), zap.Error(err))
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatVibe(r))
}
