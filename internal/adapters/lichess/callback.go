// Package lichess receives the browser redirect that ends linking a chess account.
package lichess

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	callbackPath    = "/lichess/callback"
	defaultListen   = "127.0.0.1:0"
	shutdownTimeout = 2 * time.Second
)

var (
	ErrStateMismatch   = errors.New("link callback state mismatch")
	ErrCallbackTimeout = errors.New("timed out waiting for link callback")
	ErrMissingState    = errors.New("expected state is required")
)

// ProviderError is the error the chess site put on the redirect.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return e.Code
	}
	return e.Code + ": " + e.Description
}

// NewState returns an opaque value tying the callback to the link request.
func NewState() string {
	return uuid.NewString()
}

// Receiver serves the redirect URI for one link attempt. The first
// request on the callback path settles it.
type Receiver struct {
	state    string
	listener net.Listener
	server   *http.Server

	mu      sync.Mutex
	done    chan struct{}
	settled bool
	err     error

	stopOnce sync.Once
	stopErr  error
}

// StartCallbackServer listens on addr (loopback with a free port when empty)
// and waits for a redirect carrying state.
func StartCallbackServer(addr, state string) (*Receiver, error) {
	if state == "" {
		return nil, ErrMissingState
	}
	if addr == "" {
		addr = defaultListen
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen callback server: %w", err)
	}

	r := &Receiver{state: state, listener: listener, done: make(chan struct{})}

	router := mux.NewRouter()
	router.HandleFunc(callbackPath, r.callback).Methods(http.MethodGet)
	r.server = &http.Server{Handler: router, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		if err := r.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.settle(fmt.Errorf("serve callback: %w", err))
		}
	}()

	return r, nil
}

// RedirectURI is the loopback URL the chess site sends the browser back to.
func (r *Receiver) RedirectURI() string {
	port := 0
	if tcp, ok := r.listener.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://127.0.0.1:%d%s", port, callbackPath)
}

// Wait returns the callback outcome, ErrCallbackTimeout once timeout elapses,
// or the ctx error. The receiver is stopped on return.
func (r *Receiver) Wait(ctx context.Context, timeout time.Duration) error {
	defer func() { _ = r.Close() }()

	ctx, cancel := context.WithTimeoutCause(ctx, timeout, ErrCallbackTimeout)
	defer cancel()

	select {
	case <-r.done:
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.err
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

func (r *Receiver) Close() error {
	r.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		r.stopErr = r.server.Shutdown(ctx)
	})
	return r.stopErr
}

func (r *Receiver) callback(w http.ResponseWriter, req *http.Request) {
	err := r.check(req)
	r.settle(err)

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Chess account linked. You can close this window."))
}

func (r *Receiver) check(req *http.Request) error {
	query := req.URL.Query()
	if query.Get("state") != r.state {
		return ErrStateMismatch
	}
	if code := strings.TrimSpace(query.Get("error")); code != "" {
		return &ProviderError{Code: code, Description: strings.TrimSpace(query.Get("error_description"))}
	}
	return nil
}

// settle records the first outcome; later ones are dropped.
func (r *Receiver) settle(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settled {
		return
	}
	r.settled = true
	r.err = err
	close(r.done)
}
