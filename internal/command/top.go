package command

import (
	"context"

	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
)

type TopCommand struct {
	deps *Dependencies
}

func NewTopCommand(deps *Dependencies) *TopCommand {
	return &TopCommand{deps: deps}
}

func (c *TopCommand) Name() string {
	return domain.CommandTop.String()
}

func (c *TopCommand) Description() string {
	return "가장 많이 풀이된 이름 순위"
}

func (c *TopCommand) Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	limit, ok := params["limit"].(int)
	if !ok {
		limit = constants.Limits.DefaultRanking
	}

	entries, err := c.deps.Readings.Top(ctx, limit)
	if err != nil {
		return replyFailure(c.deps, cmdCtx.Room, "랭킹 조회", err)
	}

	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatRanking(entries))
}
