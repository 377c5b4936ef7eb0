package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/kapu/namevibes-bot/internal/adapter"
	"github.com/kapu/namevibes-bot/internal/command"
	"github.com/kapu/namevibes-bot/internal/config"
	"github.com/kapu/namevibes-bot/internal/constants"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/iris"
	"github.com/kapu/namevibes-bot/internal/metrics"
	"github.com/kapu/namevibes-bot/internal/util"
	"go.uber.org/zap"
)

// MessageSender delivers replies to a chat room.
type MessageSender interface {
	SendMessage(ctx context.Context, room, message string) error
}

// MessageSource pushes incoming chat messages to registered handlers.
type MessageSource interface {
	OnMessage(h iris.MessageHandler)
	Run(ctx context.Context) error
	Close() error
}

type Dependencies struct {
	Config         *config.Config
	Logger         *zap.Logger
	Sender         MessageSender
	Source         MessageSource
	MessageAdapter *adapter.MessageAdapter
	Formatter      *adapter.ResponseFormatter
	Readings       command.ReadingService
	Metrics        *metrics.Metrics
}

// Bot turns Iris chat events into command executions.
type Bot struct {
	cfg        *config.Config
	logger     *zap.Logger
	sender     MessageSender
	source     MessageSource
	adapter    *adapter.MessageAdapter
	formatter  *adapter.ResponseFormatter
	registry   *command.Registry
	dispatcher command.Dispatcher

	mu      sync.Mutex
	started bool
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("bot dependencies must not be nil")
	}
	if deps.Config == nil || deps.Sender == nil || deps.Source == nil {
		return nil, fmt.Errorf("bot requires config, sender and source")
	}
	if deps.MessageAdapter == nil || deps.Formatter == nil || deps.Readings == nil {
		return nil, fmt.Errorf("bot requires message adapter, formatter and reading service")
	}

	b := &Bot{
		cfg:       deps.Config,
		logger:    util.OrNop(deps.Logger),
		sender:    deps.Sender,
		source:    deps.Source,
		adapter:   deps.MessageAdapter,
		formatter: deps.Formatter,
	}

	cmdDeps := &command.Dependencies{
		Readings:    deps.Readings,
		Formatter:   deps.Formatter,
		SendMessage: b.sendMessage,
		SendError:   b.sendError,
		Logger:      b.logger,
	}
	b.registry = command.NewDefaultRegistry(cmdDeps)
	b.dispatcher = command.NewSequentialDispatcher(b.registry, command.NormalizeCommand, func(t domain.CommandType) {
		deps.Metrics.ObserveCommand(t.String())
	})

	b.logger.Info("Bot initialized",
		zap.String("prefix", deps.Config.Bot.Prefix),
		zap.Int("commands", b.registry.Count()),
		zap.Strings("rooms", deps.Config.Kakao.Rooms),
	)
	return b, nil
}

// Start listens for messages until ctx is cancelled or the source gives up.
func (b *Bot) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return fmt.Errorf("bot already started")
	}
	b.started = true
	b.mu.Unlock()

	b.source.OnMessage(b.HandleMessage)

	b.logger.Info("Bot listening for messages",
		zap.String("prefix", b.cfg.Bot.Prefix),
		zap.Strings("commands", b.registry.Describe()),
	)
	if err := b.source.Run(ctx); err != nil {
		return fmt.Errorf("message source stopped: %w", err)
	}
	return nil
}

// HandleMessage parses one chat line and executes the resulting command.
func (b *Bot) HandleMessage(ctx context.Context, message *iris.Message) {
	if message == nil {
		return
	}
	if !b.cfg.Kakao.AllowsRoom(message.Room) {
		return
	}

	parsed := b.adapter.ParseMessage(message)
	if !parsed.Prefixed {
		return
	}

	cmdCtx := domain.NewCommandContext(
		message.ChatID(),
		message.Room,
		message.SenderName(),
		parsed.RawMessage,
		message.SenderName() != message.Room,
	)

	if parsed.Type == domain.CommandUnknown {
		_ = b.sendMessage(cmdCtx.Room, b.formatter.FormatUnknownCommand())
		return
	}

	execCtx, cancel := context.WithTimeout(ctx, constants.BotConfig.CommandTimeout)
	defer cancel()

	b.logger.Debug("Command received",
		zap.String("command", parsed.Type.String()),
		zap.String("room", cmdCtx.RoomName),
		zap.String("sender", cmdCtx.Sender),
	)

	event := command.CommandEvent{Type: parsed.Type, Params: parsed.Params}
	if _, err := b.dispatcher.Publish(execCtx, cmdCtx, event); err != nil {
		b.logger.Error("Command execution failed",
			zap.String("command", parsed.Type.String()),
			zap.String("room", cmdCtx.RoomName),
			zap.Error(err),
		)
		_ = b.sendError(cmdCtx.Room, "명령어 처리 중 오류가 발생했습니다.")
	}
}

// Shutdown closes the message source.
func (b *Bot) Shutdown(_ context.Context) error {
	b.logger.Info("Bot shutting down")
	if err := b.source.Close(); err != nil {
		return fmt.Errorf("close message source: %w", err)
	}
	return nil
}

// CommandNames lists the registered command names.
func (b *Bot) CommandNames() []string {
	return b.registry.Names()
}

func (b *Bot) sendMessage(room, message string) error {
	if err := b.sender.SendMessage(context.Background(), room, message); err != nil {
		b.logger.Error("Failed to send message", zap.String("room", room), zap.Error(err))
		return err
	}
	return nil
}

func (b *Bot) sendError(room, message string) error {
	return b.sendMessage(room, b.formatter.FormatError(message))
}
