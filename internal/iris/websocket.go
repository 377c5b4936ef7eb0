package iris

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kapu/namevibes-bot/internal/util"
	"go.uber.org/zap"
)

type MessageHandler func(ctx context.Context, message *Message)

// Listener keeps a WebSocket connection to Iris open and dispatches every
// decoded message to the registered handlers. Failed dials are retried up to
// maxAttempts times in a row.
type Listener struct {
	wsURL       string
	maxAttempts int
	delay       time.Duration
	dialer      *websocket.Dialer
	logger      *zap.Logger

	mu       sync.RWMutex
	state    WebSocketState
	conn     *websocket.Conn
	handlers []MessageHandler
}

func NewListener(wsURL string, maxAttempts int, delay time.Duration, logger *zap.Logger) *Listener {
	return &Listener{
		wsURL:       wsURL,
		maxAttempts: maxAttempts,
		delay:       delay,
		dialer:      &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		logger:      util.OrNop(logger),
		state:       WSStateDisconnected,
	}
}

// OnMessage registers h. Handlers run sequentially on the read goroutine.
func (l *Listener) OnMessage(h MessageHandler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
}

func (l *Listener) State() WebSocketState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Listener) IsConnected() bool {
	return l.State() == WSStateConnected
}

// Run blocks until ctx is cancelled (returning nil) or reconnects are
// exhausted (returning an error).
func (l *Listener) Run(ctx context.Context) error {
	attempts := 0
	for {
		if ctx.Err() != nil {
			l.setState(WSStateDisconnected)
			return nil
		}

		l.setState(WSStateConnecting)
		conn, _, err := l.dialer.DialContext(ctx, l.wsURL, nil)
		if err != nil {
			if ctx.Err() != nil {
				l.setState(WSStateDisconnected)
				return nil
			}

			attempts++
			l.logger.Error("Failed to connect WebSocket", zap.Int("attempt", attempts), zap.Error(err))
			if attempts > l.maxAttempts {
				l.setState(WSStateFailed)
				return fmt.Errorf("iris websocket: giving up after %d attempts: %w", attempts, err)
			}
			if !l.wait(ctx) {
				l.setState(WSStateDisconnected)
				return nil
			}
			continue
		}

		attempts = 0
		l.setConn(conn)
		l.setState(WSStateConnected)
		l.logger.Info("WebSocket connected", zap.String("url", l.wsURL))

		readErr := l.readLoop(ctx, conn)
		l.setConn(nil)

		if ctx.Err() != nil {
			l.setState(WSStateDisconnected)
			return nil
		}

		l.logger.Warn("WebSocket connection lost", zap.Error(readErr))
		l.setState(WSStateReconnecting)
		if !l.wait(ctx) {
			l.setState(WSStateDisconnected)
			return nil
		}
	}
}

// Close drops the current connection; Run reconnects unless its context is done.
func (l *Listener) Close() error {
	l.mu.Lock()
	conn := l.conn
	l.conn = nil
	l.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

func (l *Listener) readLoop(ctx context.Context, conn *websocket.Conn) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	defer conn.Close()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		l.dispatch(ctx, data)
	}
}

func (l *Listener) dispatch(ctx context.Context, data []byte) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		l.logger.Error("Failed to parse message",
			zap.Error(err),
			zap.String("data", util.TruncateString(string(data), 200)),
		)
		return
	}

	l.mu.RLock()
	handlers := make([]MessageHandler, len(l.handlers))
	copy(handlers, l.handlers)
	l.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, &message)
	}
}

func (l *Listener) wait(ctx context.Context) bool {
	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (l *Listener) setConn(conn *websocket.Conn) {
	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()
}

func (l *Listener) setState(next WebSocketState) {
	l.mu.Lock()
	prev := l.state
	l.state = next
	l.mu.Unlock()

	if prev != next {
		l.logger.Info("WebSocket state changed",
			zap.String("from", prev.String()),
			zap.String("to", next.String()),
		)
	}
}
