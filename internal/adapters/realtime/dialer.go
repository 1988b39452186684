package realtime

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	DefaultMaxReconnectAttempts = 5
	DefaultReconnectDelay       = time.Second
	defaultHandshakeTimeout     = 10 * time.Second
)

type Options struct {
	URL                  string
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	HandshakeTimeout     time.Duration
	Logger               zerolog.Logger
	Metrics              *Metrics
	// OnLifecycle, when set, is called from the connection goroutine after each lifecycle event.
	OnLifecycle func(Lifecycle)
}

type Dialer struct {
	opts   Options
	dialer *websocket.Dialer
}

var _ ports.RealtimeDialer = (*Dialer)(nil)

func NewDialer(opts Options) *Dialer {
	if opts.MaxReconnectAttempts < 0 {
		opts.MaxReconnectAttempts = 0
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = DefaultReconnectDelay
	}
	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = defaultHandshakeTimeout
	}

	return &Dialer{
		opts: opts,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: opts.HandshakeTimeout,
		},
	}
}

// Open starts connecting in the background and returns immediately.
func (d *Dialer) Open(credential string) ports.RealtimeConn {
	return d.OpenConn(credential)
}

func (d *Dialer) OpenConn(credential string) *Conn {
	header := http.Header{}
	if credential = strings.TrimSpace(credential); credential != "" {
		header.Set("Authorization", "Bearer "+credential)
	}

	ctx, cancel := context.WithCancel(context.Background())
	conn := &Conn{
		url:         d.opts.URL,
		header:      header,
		dialer:      d.dialer,
		maxAttempts: d.opts.MaxReconnectAttempts,
		delay:       d.opts.ReconnectDelay,
		logger:      d.opts.Logger,
		metrics:     d.opts.Metrics,
		onLifecycle: d.opts.OnLifecycle,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
		state:       StateConnecting,
		handlers:    make(map[string]map[uint64]ports.EventHandler),
	}
	go conn.run()

	return conn
}
