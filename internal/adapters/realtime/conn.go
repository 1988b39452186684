// Package realtime implements the websocket event stream with bounded reconnection.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type State string

const (
	StateConnecting   State = "connecting"
	StateConnected    State = "connected"
	StateReconnecting State = "reconnecting"
	StateFailed       State = "failed"
	StateClosed       State = "closed"
)

// Lifecycle event names, as logged and counted.
const (
	EventConnect          = "connect"
	EventConnectError     = "connect_error"
	EventReconnectAttempt = "reconnect_attempt"
	EventReconnectFailed  = "reconnect_failed"
	EventDisconnect       = "disconnect"
)

const closeWriteTimeout = time.Second

type Lifecycle struct {
	Event   string
	Attempt int
	Err     error
}

type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Conn is one credential-bound event stream. Handlers run on the read goroutine
// and must not call Close on the same Conn.
type Conn struct {
	url         string
	header      http.Header
	dialer      *websocket.Dialer
	maxAttempts int
	delay       time.Duration
	logger      zerolog.Logger
	metrics     *Metrics
	onLifecycle func(Lifecycle)

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	state    State
	ws       *websocket.Conn
	handlers map[string]map[uint64]ports.EventHandler
	nextID   uint64

	closeOnce sync.Once
}

var _ ports.RealtimeConn = (*Conn)(nil)

func (c *Conn) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the connection has stopped for good, either closed or failed.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

func (c *Conn) On(event string, handler ports.EventHandler) ports.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[uint64]ports.EventHandler)
	}
	c.handlers[event][id] = handler

	return &subscription{conn: c, event: event, id: id}
}

func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()

		c.mu.Lock()
		ws := c.ws
		c.mu.Unlock()
		if ws != nil {
			deadline := time.Now().Add(closeWriteTimeout)
			_ = ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			_ = ws.Close()
		}
	})

	<-c.done

	c.mu.Lock()
	c.state = StateClosed
	c.mu.Unlock()

	return nil
}

func (c *Conn) run() {
	defer close(c.done)

	attempt := 0
	for {
		ws, response, err := c.dialer.DialContext(c.ctx, c.url, c.header)
		if response != nil && response.Body != nil {
			_ = response.Body.Close()
		}
		if err != nil {
			if c.ctx.Err() != nil {
				return
			}
			c.emit(Lifecycle{Event: EventConnectError, Attempt: attempt, Err: err})
			if !c.retry(&attempt) {
				return
			}
			continue
		}

		if !c.attach(ws) {
			_ = ws.Close()
			return
		}
		attempt = 0
		c.emit(Lifecycle{Event: EventConnect})

		err = c.read(ws)
		c.detach()
		if c.ctx.Err() != nil {
			c.emit(Lifecycle{Event: EventDisconnect})
			return
		}
		c.emit(Lifecycle{Event: EventDisconnect, Err: err})
		if !c.retry(&attempt) {
			return
		}
	}
}

// retry waits the fixed delay before the next attempt. It reports false once the
// attempt budget is spent or the connection was closed.
func (c *Conn) retry(attempt *int) bool {
	*attempt++
	if *attempt > c.maxAttempts {
		c.setState(StateFailed)
		c.emit(Lifecycle{Event: EventReconnectFailed, Attempt: *attempt - 1})
		return false
	}

	c.setState(StateReconnecting)
	timer := time.NewTimer(c.delay)
	defer timer.Stop()
	select {
	case <-c.ctx.Done():
		return false
	case <-timer.C:
	}

	c.emit(Lifecycle{Event: EventReconnectAttempt, Attempt: *attempt})
	return true
}

func (c *Conn) attach(ws *websocket.Conn) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx.Err() != nil {
		return false
	}
	c.ws = ws
	c.state = StateConnected
	c.metrics.setConnected(1)
	return true
}

func (c *Conn) detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ws != nil {
		_ = c.ws.Close()
		c.ws = nil
		c.metrics.setConnected(-1)
	}
	if c.state == StateConnected {
		c.state = StateReconnecting
	}
}

func (c *Conn) setState(state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateClosed {
		c.state = state
	}
}

func (c *Conn) read(ws *websocket.Conn) error {
	for {
		messageType, data, err := ws.ReadMessage()
		if err != nil {
			return err
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}

		var message envelope
		if err := json.Unmarshal(data, &message); err != nil || strings.TrimSpace(message.Event) == "" {
			c.logger.Warn().Int("bytes", len(data)).Msg("dropping malformed realtime frame")
			continue
		}
		c.dispatch(message.Event, message.Data)
	}
}

func (c *Conn) dispatch(event string, payload json.RawMessage) {
	c.mu.Lock()
	registered := c.handlers[event]
	handlers := make([]ports.EventHandler, 0, len(registered))
	for _, handler := range registered {
		handlers = append(handlers, handler)
	}
	c.mu.Unlock()

	if len(handlers) == 0 {
		c.logger.Debug().Str("event", event).Msg("no handler for realtime event")
		return
	}

	c.metrics.observeDispatch(event)
	for _, handler := range handlers {
		handler(payload)
	}
}

func (c *Conn) emit(event Lifecycle) {
	c.metrics.observeLifecycle(event.Event)

	var entry *zerolog.Event
	switch event.Event {
	case EventConnectError, EventReconnectFailed:
		entry = c.logger.Warn()
	case EventDisconnect:
		if event.Err != nil && !isNormalClose(event.Err) {
			entry = c.logger.Warn()
		} else {
			entry = c.logger.Debug()
		}
	default:
		entry = c.logger.Debug()
	}
	if event.Attempt > 0 {
		entry = entry.Int("attempt", event.Attempt)
	}
	if event.Err != nil {
		entry = entry.Err(event.Err)
	}
	entry.Str("event", event.Event).Msg("realtime lifecycle")

	if c.onLifecycle != nil {
		c.onLifecycle(event)
	}
}

func (c *Conn) unsubscribe(event string, id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	handlers := c.handlers[event]
	if handlers == nil {
		return
	}
	delete(handlers, id)
	if len(handlers) == 0 {
		delete(c.handlers, event)
	}
}

func isNormalClose(err error) bool {
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		return closeErr.Code == websocket.CloseNormalClosure || closeErr.Code == websocket.CloseGoingAway
	}
	return false
}

type subscription struct {
	conn  *Conn
	event string
	id    uint64
	once  sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.conn.unsubscribe(s.event, s.id)
	})
}
