package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testEpoch = time.Unix(1_800_000_000, 0).UTC()

func mockAnyContext() interface{} {
	return mock.Anything
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func mintToken(t *testing.T, expiresAt time.Time, overrides jwt.MapClaims) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":       "u-1",
		"username": "magnus",
		"email":    "magnus@example.com",
		"role":     "user",
		"iat":      testEpoch.Add(-time.Minute).Unix(),
		"exp":      expiresAt.Unix(),
	}
	for key, value := range overrides {
		if value == nil {
			delete(claims, key)
			continue
		}
		claims[key] = value
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: testEpoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) ports.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	timer := &fakeTimer{clock: c, at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, timer)
	return timer
}

// Advance moves time forward and runs every timer that became due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired && !timer.at.After(c.now) {
			timer.fired = true
			due = append(due, timer)
		}
	}
	c.mu.Unlock()

	for _, timer := range due {
		timer.fn()
	}
}

func (c *fakeClock) active() []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var active []*fakeTimer
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			active = append(active, timer)
		}
	}
	return active
}

func (c *fakeClock) all() []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*fakeTimer(nil), c.timers...)
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	wasActive := !t.stopped && !t.fired
	t.stopped = true
	return wasActive
}

type memoryStore struct {
	mu         sync.Mutex
	credential string
	clears     int
	saveErr    error
}

func (s *memoryStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.credential == "" {
		return "", domain.ErrCredentialNotFound
	}
	return s.credential, nil
}

func (s *memoryStore) Save(_ context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.credential = credential
	return nil
}

func (s *memoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = ""
	s.clears++
	return nil
}

func (s *memoryStore) value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

type fakeConn struct {
	credential string

	mu       sync.Mutex
	handlers map[string]map[int]ports.EventHandler
	nextID   int
	closed   bool
}

type fakeSubscription struct {
	conn  *fakeConn
	event string
	id    int
}

func (s fakeSubscription) Unsubscribe() {
	s.conn.mu.Lock()
	defer s.conn.mu.Unlock()
	delete(s.conn.handlers[s.event], s.id)
}

func (c *fakeConn) On(event string, handler ports.EventHandler) ports.Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[int]ports.EventHandler)
	}
	c.handlers[event][c.nextID] = handler
	return fakeSubscription{conn: c, event: event, id: c.nextID}
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Emit delivers payload to every handler of event, as the read goroutine would.
func (c *fakeConn) Emit(event string, payload string) {
	c.mu.Lock()
	handlers := make([]ports.EventHandler, 0, len(c.handlers[event]))
	for _, handler := range c.handlers[event] {
		handlers = append(handlers, handler)
	}
	c.mu.Unlock()

	for _, handler := range handlers {
		handler(json.RawMessage(payload))
	}
}

func (c *fakeConn) handlerCount(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handlers[event])
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type fakeDialer struct {
	mu    sync.Mutex
	conns []*fakeConn
}

func (d *fakeDialer) Open(credential string) ports.RealtimeConn {
	d.mu.Lock()
	defer d.mu.Unlock()

	conn := &fakeConn{credential: credential, handlers: make(map[string]map[int]ports.EventHandler)}
	d.conns = append(d.conns, conn)
	return conn
}

func (d *fakeDialer) opened() []*fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*fakeConn(nil), d.conns...)
}

func (d *fakeDialer) live() []*fakeConn {
	var live []*fakeConn
	for _, conn := range d.opened() {
		if !conn.isClosed() {
			live = append(live, conn)
		}
	}
	return live
}

func decodeTestNotification(payload json.RawMessage) (domain.Notification, error) {
	var record struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Notification{}, err
	}
	if record.ID == "" {
		return domain.Notification{}, errors.New("id is required")
	}
	return domain.Notification{ID: domain.NotificationID(record.ID), Message: record.Message}, nil
}

func newTestSessions(store ports.CredentialStore, clock ports.Clock) *SessionManager {
	return NewSessionManager(store, clock, zerolog.Nop())
}
