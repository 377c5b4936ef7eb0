package command

import (
	"context"
	stderrors "errors"

	"github.com/kapu/namevibes-bot/internal/adapter"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/pkg/errors"
	"go.uber.org/zap"
)

type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, cmdCtx *domain.CommandContext, params map[string]any) error
}

// ReadingService is what the chat commands need from the reading service.
type ReadingService interface {
	Get(ctx context.Context, name string) (*domain.Reading, error)
	Record(ctx context.Context, name, source string) (*domain.Reading, error)
	Narrate(ctx context.Context, r *domain.Reading) error
	Top(ctx context.Context, limit int) ([]domain.RankEntry, error)
}

type Dependencies struct {
	Readings    ReadingService
	Formatter   *adapter.ResponseFormatter
	SendMessage func(room, message string) error
	SendError   func(room, message string) error
	Logger      *zap.Logger
}

// CommandEvent is one parsed command waiting for dispatch.
type CommandEvent struct {
	Type   domain.CommandType
	Params map[string]any
}

type Dispatcher interface {
	Publish(ctx context.Context, cmdCtx *domain.CommandContext, events ...CommandEvent) (int, error)
}

// NormalizeCommand maps a command type to its registry key.
func NormalizeCommand(cmdType domain.CommandType, params map[string]any) (string, map[string]any) {
	return cmdType.String(), params
}

// NewDefaultRegistry registers every chat command.
func NewDefaultRegistry(deps *Dependencies) *Registry {
	registry := NewRegistry()
	registry.mustRegister(
		NewElementsCommand(deps),
		NewNumerologyCommand(deps),
		NewZodiacCommand(deps),
		NewVibeCommand(deps),
		NewTopCommand(deps),
		NewTableCommand(deps),
		NewHelpCommand(deps),
	)
	return registry
}

func stringParam(params map[string]any, key string) string {
	value, _ := params[key].(string)
	return value
}

// replyFailure answers validation errors with their message and hides
// everything else behind a generic reply.
func replyFailure(deps *Dependencies, room, action string, err error) error {
	var validation *errors.ValidationError
	if stderrors.As(err, &validation) {
		return deps.SendError(room, validation.Message)
	}

	deps.Logger.Error("Command failed", zap.String("action", action), zap.Error(err))
	return deps.SendError(room, action+" 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
}
