package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/logging"
	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// SessionState is one observed session transition. Generation increases on every
// transition and identifies the session scope consumers attach work to.
type SessionState struct {
	Generation uint64
	Session    domain.Session
	// Reason is set when the transition ended a session on its own: expiry or a malformed credential.
	Reason error
}

func (s SessionState) Anonymous() bool {
	return s.Session.Anonymous()
}

// SessionManager is the only writer of the persisted credential.
// Watchers are called synchronously and in order; they must not call back into
// Login, Logout or Restore.
type SessionManager struct {
	store  ports.CredentialStore
	clock  ports.Clock
	logger zerolog.Logger

	dispatchMu sync.Mutex

	mu       sync.Mutex
	state    SessionState
	timer    ports.Timer
	watchers map[uint64]func(SessionState)
	nextID   uint64
}

func NewSessionManager(store ports.CredentialStore, clock ports.Clock, logger zerolog.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionManager{
		store:    store,
		clock:    clock,
		logger:   logging.Component(logger, "session"),
		watchers: make(map[uint64]func(SessionState)),
	}
}

// Restore loads the persisted credential, if any, and decodes it like Login does.
func (m *SessionManager) Restore(ctx context.Context) error {
	credential, err := m.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return nil
		}
		m.logger.Warn().Err(err).Msg("load persisted credential")
		return fmt.Errorf("restore session: %w", err)
	}

	return m.apply(ctx, credential)
}

// Login persists credential and makes it current. A malformed or expired credential
// leaves the manager anonymous and the error is returned.
func (m *SessionManager) Login(ctx context.Context, credential string) error {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return fmt.Errorf("login: %w: empty credential", domain.ErrMalformedCredential)
	}
	if err := m.store.Save(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	return m.apply(ctx, credential)
}

func (m *SessionManager) Logout(ctx context.Context) error {
	return m.end(ctx, 0, nil)
}

func (m *SessionManager) Current() (domain.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Anonymous() {
		return domain.Session{}, false
	}
	return m.state.Session, true
}

// Credential returns the current credential, or "" when anonymous.
func (m *SessionManager) Credential() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Session.Credential
}

func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Watch registers fn and immediately delivers the current state to it.
func (m *SessionManager) Watch(fn func(SessionState)) (release func()) {
	m.dispatchMu.Lock()
	defer m.dispatchMu.Unlock()

	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.watchers[id] = fn
	current := m.state
	m.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.watchers, id)
			m.mu.Unlock()
		})
	}
}

// Close stops the pending expiry timer without touching the persisted credential.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimerLocked()
}

func (m *SessionManager) apply(ctx context.Context, credential string) error {
	claims, err := decodeClaims(credential)
	if err != nil {
		m.logger.Warn().Err(err).Msg("discarding credential")
		_ = m.end(ctx, 0, domain.ErrMalformedCredential)
		return err
	}

	now := m.clock.Now()
	if claims.Expired(now) {
		m.logger.Info().Time("expires_at", claims.ExpiresAt).Msg("credential already expired")
		_ = m.end(ctx, 0, domain.ErrSessionExpired)
		return domain.ErrSessionExpired
	}

	m.dispatchMu.Lock()
	defer m.dispatchMu.Unlock()

	m.mu.Lock()
	m.stopTimerLocked()
	m.state = SessionState{
		Generation: m.state.Generation + 1,
		Session:    domain.Session{Credential: credential, Claims: claims},
	}
	generation := m.state.Generation
	m.timer = m.clock.AfterFunc(claims.ExpiresAt.Sub(now), func() {
		m.expire(generation)
	})
	next, watchers := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.Debug().
		Str("user", claims.Username).
		Time("expires_at", claims.ExpiresAt).
		Uint64("generation", generation).
		Msg("session started")
	notify(watchers, next)

	return nil
}

func (m *SessionManager) expire(generation uint64) {
	m.mu.Lock()
	current := m.state.Generation
	m.mu.Unlock()
	if current != generation {
		return
	}

	m.logger.Info().Uint64("generation", generation).Msg("session expired")
	if err := m.end(context.Background(), generation, domain.ErrSessionExpired); err != nil {
		m.logger.Warn().Err(err).Msg("clear expired credential")
	}
}

// end clears the persisted and in-memory credential. A non-zero onlyGeneration makes
// it a no-op when a newer session has replaced that generation in the meantime.
func (m *SessionManager) end(ctx context.Context, onlyGeneration uint64, reason error) error {
	m.dispatchMu.Lock()
	defer m.dispatchMu.Unlock()

	m.mu.Lock()
	if onlyGeneration != 0 && m.state.Generation != onlyGeneration {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	clearErr := m.store.Clear(ctx)
	if clearErr != nil {
		m.logger.Warn().Err(clearErr).Msg("clear persisted credential")
		clearErr = fmt.Errorf("clear credential: %w", clearErr)
	}

	m.mu.Lock()
	m.stopTimerLocked()
	m.state = SessionState{Generation: m.state.Generation + 1, Reason: reason}
	next, watchers := m.snapshotLocked()
	m.mu.Unlock()

	notify(watchers, next)

	return clearErr
}

func (m *SessionManager) stopTimerLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *SessionManager) snapshotLocked() (SessionState, []func(SessionState)) {
	watchers := make([]func(SessionState), 0, len(m.watchers))
	for _, id := range sortedKeys(m.watchers) {
		watchers = append(watchers, m.watchers[id])
	}
	return m.state, watchers
}

func notify(watchers []func(SessionState), state SessionState) {
	for _, fn := range watchers {
		fn(state)
	}
}

// decodeClaims reads the credential payload without verifying its signature;
// the backend remains the authority on validity.
func decodeClaims(credential string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", domain.ErrMalformedCredential, err)
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", domain.ErrMalformedCredential, err)
	}
	issuedAt, err := claims.GetIssuedAt()
	if err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %v", domain.ErrMalformedCredential, err)
	}

	decoded := domain.Claims{
		UserID:   claimString(claims, "id"),
		Username: claimString(claims, "username"),
		Email:    claimString(claims, "email"),
		Role:     domain.Role(strings.ToLower(claimString(claims, "role"))),
	}
	if decoded.UserID == "" {
		decoded.UserID = claimString(claims, "sub")
	}
	if decoded.Role == "" {
		decoded.Role = domain.RoleUser
	}
	if expiresAt != nil {
		decoded.ExpiresAt = expiresAt.Time
	}
	if issuedAt != nil {
		decoded.IssuedAt = issuedAt.Time
	}

	return decoded, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	switch value := claims[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return fmt.Sprintf("%.0f", value)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}
