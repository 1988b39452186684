package application

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
)

var ErrClosed = errors.New("application closed")

type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseReady         Phase = "ready"
)

// scope tracks one session generation for a domain context. Fetch results are
// applied only while their generation is current and their sequence is newer
// than the last one applied.
type scope struct {
	generation uint64
	anonymous  bool
	phase      Phase
	ready      chan struct{}
	readyDone  bool
	issued     uint64
	applied    uint64
	ctx        context.Context
	cancel     context.CancelFunc
}

func newScope() scope {
	return scope{phase: PhaseUninitialized, ready: make(chan struct{}), anonymous: true}
}

// reset enters the scope of state and returns the context for its fetches.
// Anonymous scopes are ready immediately.
func (s *scope) reset(state SessionState) context.Context {
	if s.cancel != nil {
		s.cancel()
	}
	s.wake()

	ctx, cancel := context.WithCancel(context.Background())
	s.ctx = ctx
	s.cancel = cancel
	s.generation = state.Generation
	s.anonymous = state.Anonymous()
	s.ready = make(chan struct{})
	s.readyDone = false
	if s.anonymous {
		s.markReady()
		return ctx
	}
	s.phase = PhaseLoading
	return ctx
}

func (s *scope) begin() (generation, sequence uint64) {
	s.issued++
	return s.generation, s.issued
}

// accept reports whether a result from (generation, sequence) may be applied and
// records it as applied when it may.
func (s *scope) accept(generation, sequence uint64) bool {
	if generation != s.generation || s.anonymous || sequence <= s.applied {
		return false
	}
	s.applied = sequence
	s.markReady()
	return true
}

func (s *scope) markReady() {
	s.phase = PhaseReady
	s.wake()
}

func (s *scope) wake() {
	if !s.readyDone {
		close(s.ready)
		s.readyDone = true
	}
}

func (s *scope) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wake()
}

// base carries what every domain context shares: the lock, the scope and
// the goroutines fetching on its behalf.
type base struct {
	mu       sync.Mutex
	scope    scope
	inflight sync.WaitGroup
	releases []func()
	closed   bool
}

func newBase() base {
	return base{scope: newScope()}
}

// waitReady blocks until the current scope is ready or ctx is done.
func (b *base) waitReady(ctx context.Context) error {
	for {
		b.mu.Lock()
		if b.scope.phase == PhaseReady {
			b.mu.Unlock()
			return nil
		}
		if b.closed {
			b.mu.Unlock()
			return ErrClosed
		}
		ready := b.scope.ready
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ready:
		}
	}
}

func (b *base) phase() Phase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scope.phase
}

// scopeContextLocked is canceled when the current scope ends.
func (b *base) scopeContextLocked() context.Context {
	if b.scope.ctx == nil {
		return context.Background()
	}
	return b.scope.ctx
}

func (b *base) track(release func()) {
	b.mu.Lock()
	b.releases = append(b.releases, release)
	b.mu.Unlock()
}

// shutdown releases the watchers and waits for in-flight fetches to return.
func (b *base) shutdown() {
	b.mu.Lock()
	releases := b.releases
	b.releases = nil
	b.closed = true
	b.scope.stop()
	b.mu.Unlock()

	for _, release := range releases {
		release()
	}
	b.inflight.Wait()
}

func (b *base) spawn(fn func()) {
	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()
		fn()
	}()
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	return slices.Sorted(maps.Keys(m))
}
