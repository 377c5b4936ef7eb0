package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/kapu/namevibes-bot/internal/adapter"
	"github.com/kapu/namevibes-bot/internal/config"
	"github.com/kapu/namevibes-bot/internal/domain"
	"github.com/kapu/namevibes-bot/internal/iris"
	"github.com/kapu/namevibes-bot/internal/metrics"
	"github.com/kapu/namevibes-bot/internal/service/reading"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentMessage struct {
	room string
	text string
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (s *recordingSender) SendMessage(_ context.Context, room, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMessage{room: room, text: message})
	return nil
}

// scriptedSource replays fixed messages when Run is called.
type scriptedSource struct {
	messages []*iris.Message
	handlers []iris.MessageHandler
	closed   bool
}

func (s *scriptedSource) OnMessage(h iris.MessageHandler) {
	s.handlers = append(s.handlers, h)
}

func (s *scriptedSource) Run(ctx context.Context) error {
	for _, msg := range s.messages {
		for _, h := range s.handlers {
			h(ctx, msg)
		}
	}
	return nil
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

type computeOnly struct{}

func (computeOnly) Get(_ context.Context, name string) (*domain.Reading, error) {
	return reading.Compute(name)
}

func (computeOnly) Record(_ context.Context, name, _ string) (*domain.Reading, error) {
	return reading.Compute(name)
}

func (computeOnly) Narrate(context.Context, *domain.Reading) error { return nil }

func (computeOnly) Top(context.Context, int) ([]domain.RankEntry, error) { return nil, nil }

func newTestBot(t *testing.T, rooms []string, messages ...*iris.Message) (*Bot, *recordingSender, *scriptedSource, *metrics.Metrics) {
	t.Helper()
	cfg := &config.Config{
		Kakao: config.KakaoConfig{Rooms: rooms},
		Bot:   config.BotConfig{Enabled: true, Prefix: "!"},
	}
	sender := &recordingSender{}
	source := &scriptedSource{messages: messages}
	m := metrics.New()

	b, err := NewBot(&Dependencies{
		Config:         cfg,
		Logger:         zap.NewNop(),
		Sender:         sender,
		Source:         source,
		MessageAdapter: adapter.NewMessageAdapter("!"),
		Formatter:      adapter.NewResponseFormatter("!"),
		Readings:       computeOnly{},
		Metrics:        m,
	})
	require.NoError(t, err)
	return b, sender, source, m
}

func chat(room, sender, text string) *iris.Message {
	return &iris.Message{Msg: text, Room: room, Sender: &sender}
}

func TestBotAnswersPrefixedCommands(t *testing.T) {
	b, sender, _, m := newTestBot(t, nil,
		chat("lab", "kim", "!원소 John"),
		chat("lab", "kim", "그냥 대화"),
		chat("lab", "kim", "!없는명령"),
	)

	require.NoError(t, b.Start(context.Background()))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "lab", sender.sent[0].room)
	assert.Contains(t, sender.sent[0].text, "O · H · N")
	assert.Contains(t, sender.sent[1].text, "알 수 없는 명령어")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `namevibes_bot_commands_total{command="elements"} 1`)
}

func TestBotIgnoresOtherRooms(t *testing.T) {
	b, sender, _, _ := newTestBot(t, []string{"lab"},
		chat("lounge", "kim", "!도움말"),
		chat("lab", "kim", "!도움말"),
	)

	require.NoError(t, b.Start(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "lab", sender.sent[0].room)
}

func TestBotRepliesToChatID(t *testing.T) {
	msg := chat("lab", "kim", "!주기율표 fe")
	msg.JSON = &iris.MessageJSON{ChatID: "1234"}
	b, sender, _, _ := newTestBot(t, nil, msg)

	require.NoError(t, b.Start(context.Background()))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "1234", sender.sent[0].room)
	assert.Contains(t, sender.sent[0].text, "Iron")
}

func TestBotStartTwice(t *testing.T) {
	b, _, source, _ := newTestBot(t, nil)

	require.NoError(t, b.Start(context.Background()))
	assert.Error(t, b.Start(context.Background()))

	require.NoError(t, b.Shutdown(context.Background()))
	assert.True(t, source.closed)
}

func TestNewBotRequiresDependencies(t *testing.T) {
	_, err := NewBot(nil)
	assert.Error(t, err)

	_, err = NewBot(&Dependencies{Config: &config.Config{}})
	assert.Error(t, err)
}

func TestBotCommandNames(t *testing.T) {
	b, _, _, _ := newTestBot(t, nil)
	assert.Contains(t, b.CommandNames(), "vibe")
}
