package ports

import "encoding/json"

const (
	EventNotification = "notification"
	EventBetAccepted  = "betAccepted"
)

type EventHandler func(payload json.RawMessage)

type Subscription interface {
	Unsubscribe()
}

// RealtimeConn is one live event-stream connection bound to a single credential.
type RealtimeConn interface {
	On(event string, handler EventHandler) Subscription
	Close() error
}

// RealtimeDialer returns immediately; connecting and reconnecting happen in the background.
type RealtimeDialer interface {
	Open(credential string) RealtimeConn
}
