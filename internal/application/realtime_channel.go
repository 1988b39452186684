package application

import (
	"sync"

	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
)

// ConnectionState is delivered to connection watchers. Generation is the session
// generation the connection belongs to; Conn is nil while anonymous.
type ConnectionState struct {
	Generation uint64
	Conn       ports.RealtimeConn
}

// RealtimeChannel owns at most one live connection, always bound to the current credential.
type RealtimeChannel struct {
	dialer ports.RealtimeDialer
	logger zerolog.Logger

	mu             sync.Mutex
	current        ConnectionState
	watchers       map[uint64]func(ConnectionState)
	nextID         uint64
	releaseSession func()
	closed         bool
}

func NewRealtimeChannel(dialer ports.RealtimeDialer, logger zerolog.Logger) *RealtimeChannel {
	return &RealtimeChannel{
		dialer:   dialer,
		logger:   logging.Component(logger, "realtime"),
		watchers: make(map[uint64]func(ConnectionState)),
	}
}

// Attach starts following sessions. Watchers registered on sessions before Attach
// observe each transition before the connection for it is replaced.
func (c *RealtimeChannel) Attach(sessions *SessionManager) {
	release := sessions.Watch(c.onSession)

	c.mu.Lock()
	c.releaseSession = release
	c.mu.Unlock()
}

func (c *RealtimeChannel) Connection() ports.RealtimeConn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.Conn
}

// WatchConnection registers fn and immediately delivers the current connection to it.
func (c *RealtimeChannel) WatchConnection(fn func(ConnectionState)) (release func()) {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.watchers[id] = fn
	current := c.current
	c.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.watchers, id)
			c.mu.Unlock()
		})
	}
}

// Close stops following sessions and closes the live connection.
func (c *RealtimeChannel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	release := c.releaseSession
	c.releaseSession = nil
	c.mu.Unlock()

	if release != nil {
		release()
	}
	c.replace(ConnectionState{})
}

func (c *RealtimeChannel) onSession(state SessionState) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	next := ConnectionState{Generation: state.Generation}
	c.replace(next)
	if state.Anonymous() {
		return
	}

	next.Conn = c.dialer.Open(state.Session.Credential)
	c.logger.Debug().Uint64("generation", state.Generation).Msg("opened realtime connection")
	c.replace(next)
}

// replace closes the previous connection before publishing next.
func (c *RealtimeChannel) replace(next ConnectionState) {
	c.mu.Lock()
	previous := c.current
	c.current = next
	watchers := make([]func(ConnectionState), 0, len(c.watchers))
	for _, id := range sortedKeys(c.watchers) {
		watchers = append(watchers, c.watchers[id])
	}
	c.mu.Unlock()

	if previous.Conn != nil {
		if err := previous.Conn.Close(); err != nil {
			c.logger.Warn().Err(err).Msg("close realtime connection")
		}
	}
	if previous.Conn == nil && next.Conn == nil && previous.Generation == next.Generation {
		return
	}

	for _, fn := range watchers {
		fn(next)
	}
}
