package command

import (
	"context"
	"fmt"

	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/element"
)

type TableCommand struct {
	deps *Dependencies
}

func NewTableCommand(deps *Dependencies) *TableCommand {
	return &TableCommand{deps: deps}
}

func (c *TableCommand) Name() string {
	return domain.CommandTable.String()
}

func (c *TableCommand) Description() string {
	return "원소 기호나 원자번호로 원소 정보를 조회합니다"
}

func (c *TableCommand) Execute(_ context.Context, cmdCtx *domain.CommandContext, params map[string]any) error {
	var (
		rec   element.Record
		found bool
		query string
	)

	if n, ok := params["number"].(int); ok {
		rec, found = element.ByNumber(n)
		query = fmt.Sprintf("%d번", n)
	} else if symbol := stringParam(params, "symbol"); symbol != "" {
		rec, found = element.Lookup(symbol)
		query = symbol
	} else {
		return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatUsage("주기율표", "[기호|번호]"))
	}

	if !found {
		return c.deps.SendError(cmdCtx.Room, fmt.Sprintf("%s 원소를 찾을 수 없습니다.", query))
	}
	return c.deps.SendMessage(cmdCtx.Room, c.deps.Formatter.FormatElementRecord(rec))
}
