package application

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/rs/zerolog"
)

// NotificationDecoder turns a realtime payload into a validated record.
type NotificationDecoder func(payload json.RawMessage) (domain.Notification, error)

type NotificationsSnapshot struct {
	Phase         Phase
	Notifications []domain.Notification
	Unread        int
}

// NotificationsContext holds the notification list and unread counter for the
// current session. Records are newest first and never removed locally.
type NotificationsContext struct {
	base

	api    ports.NotificationAPI
	decode NotificationDecoder
	logger zerolog.Logger

	records []domain.Notification
	unread  int
	pending []domain.Notification
	sub     ports.Subscription

	listenersMu sync.Mutex
	listeners   map[uint64]func(domain.Notification)
	nextID      uint64
}

func NewNotificationsContext(api ports.NotificationAPI, decode NotificationDecoder, logger zerolog.Logger) *NotificationsContext {
	return &NotificationsContext{
		base:      newBase(),
		api:       api,
		decode:    decode,
		logger:    logging.Component(logger, "notifications"),
		listeners: make(map[uint64]func(domain.Notification)),
	}
}

// Attach follows sessions and, when channel is non-nil, the live connection.
func (c *NotificationsContext) Attach(sessions *SessionManager, channel *RealtimeChannel) {
	c.track(sessions.Watch(c.onSession))
	if channel != nil {
		c.track(channel.WatchConnection(c.onConnection))
	}
}

func (c *NotificationsContext) Close() {
	c.mu.Lock()
	c.releaseSubscriptionLocked()
	c.mu.Unlock()
	c.shutdown()
}

func (c *NotificationsContext) WaitReady(ctx context.Context) error {
	return c.waitReady(ctx)
}

func (c *NotificationsContext) Snapshot() NotificationsSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return NotificationsSnapshot{
		Phase:         c.scope.phase,
		Notifications: append([]domain.Notification(nil), c.records...),
		Unread:        c.unread,
	}
}

// OnNotification registers fn for every live notification applied to the list.
func (c *NotificationsContext) OnNotification(fn func(domain.Notification)) (release func()) {
	c.listenersMu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	c.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.listenersMu.Lock()
			delete(c.listeners, id)
			c.listenersMu.Unlock()
		})
	}
}

// Refresh replaces the list with a fresh batch. On failure the current state is kept.
func (c *NotificationsContext) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.scope.anonymous {
		c.mu.Unlock()
		return domain.ErrNotLoggedIn
	}
	generation, sequence := c.scope.begin()
	c.mu.Unlock()

	batch, err := c.api.ListNotifications(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("refresh notifications")
		return fmt.Errorf("refresh notifications: %w", err)
	}

	c.mu.Lock()
	var replayed []domain.Notification
	if c.scope.accept(generation, sequence) {
		replayed = c.applyBatchLocked(batch)
	}
	c.mu.Unlock()

	for _, record := range replayed {
		c.notifyListeners(record)
	}
	return nil
}

// MarkAsRead updates local state only after the backend confirmed the change.
func (c *NotificationsContext) MarkAsRead(ctx context.Context, id domain.NotificationID) error {
	generation, err := c.currentGeneration()
	if err != nil {
		return err
	}

	if err := c.api.MarkNotificationRead(ctx, id); err != nil {
		c.logger.Warn().Err(err).Str("notification", string(id)).Msg("mark notification read")
		return fmt.Errorf("mark notification %s read: %w", id, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.scope.generation {
		return nil
	}

	// unread follows the server total, not the local read flags.
	for i := range c.records {
		if c.records[i].ID == id {
			c.records[i].Read = true
			break
		}
	}
	c.unread = max(c.unread-1, 0)
	return nil
}

func (c *NotificationsContext) MarkAllAsRead(ctx context.Context) error {
	generation, err := c.currentGeneration()
	if err != nil {
		return err
	}

	if err := c.api.MarkAllNotificationsRead(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("mark all notifications read")
		return fmt.Errorf("mark all notifications read: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.scope.generation {
		return nil
	}
	for i := range c.records {
		c.records[i].Read = true
	}
	c.unread = 0
	return nil
}

func (c *NotificationsContext) currentGeneration() (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.scope.anonymous {
		return 0, domain.ErrNotLoggedIn
	}
	return c.scope.generation, nil
}

func (c *NotificationsContext) onSession(state SessionState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.releaseSubscriptionLocked()
	ctx := c.scope.reset(state)
	c.records = nil
	c.unread = 0
	c.pending = nil
	if state.Anonymous() {
		return
	}

	generation, sequence := c.scope.begin()
	c.spawn(func() { c.load(ctx, generation, sequence) })
}

func (c *NotificationsContext) load(ctx context.Context, generation, sequence uint64) {
	batch, err := c.api.ListNotifications(ctx)

	c.mu.Lock()
	if !c.scope.accept(generation, sequence) {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.Warn().Err(err).Msg("load notifications")
		batch = domain.NotificationBatch{}
	}
	replayed := c.applyBatchLocked(batch)
	c.mu.Unlock()

	for _, record := range replayed {
		c.notifyListeners(record)
	}
}

// applyBatchLocked installs batch and replays events buffered while loading.
// Buffered records already present in the batch are not counted again.
// It returns the replayed records, oldest first.
func (c *NotificationsContext) applyBatchLocked(batch domain.NotificationBatch) []domain.Notification {
	c.records = append([]domain.Notification(nil), batch.Notifications...)
	c.unread = max(batch.Total, 0)

	seen := make(map[domain.NotificationID]struct{}, len(c.records))
	for _, record := range c.records {
		seen[record.ID] = struct{}{}
	}
	pending := c.pending
	c.pending = nil
	var replayed []domain.Notification
	for _, record := range pending {
		if _, ok := seen[record.ID]; ok {
			continue
		}
		seen[record.ID] = struct{}{}
		c.prependLocked(record)
		replayed = append(replayed, record)
	}
	return replayed
}

func (c *NotificationsContext) prependLocked(record domain.Notification) {
	c.records = append([]domain.Notification{record}, c.records...)
	c.unread++
}

func (c *NotificationsContext) onConnection(state ConnectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseSubscriptionLocked()
	if c.closed || state.Conn == nil || c.scope.anonymous || state.Generation != c.scope.generation {
		return
	}

	generation := state.Generation
	c.sub = state.Conn.On(ports.EventNotification, func(payload json.RawMessage) {
		c.handleEvent(generation, payload)
	})
}

func (c *NotificationsContext) handleEvent(generation uint64, payload json.RawMessage) {
	record, err := c.decode(payload)
	if err != nil {
		c.logger.Warn().Err(err).Msg("dropping invalid notification event")
		return
	}

	c.mu.Lock()
	if generation != c.scope.generation || c.scope.anonymous {
		c.mu.Unlock()
		return
	}
	if c.scope.phase != PhaseReady {
		c.pending = append(c.pending, record)
		c.mu.Unlock()
		return
	}
	c.prependLocked(record)
	c.mu.Unlock()

	c.notifyListeners(record)
}

func (c *NotificationsContext) notifyListeners(record domain.Notification) {
	c.listenersMu.Lock()
	listeners := make([]func(domain.Notification), 0, len(c.listeners))
	for _, id := range sortedKeys(c.listeners) {
		listeners = append(listeners, c.listeners[id])
	}
	c.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(record)
	}
}

func (c *NotificationsContext) releaseSubscriptionLocked() {
	if c.sub != nil {
		c.sub.Unsubscribe()
		c.sub = nil
	}
}
