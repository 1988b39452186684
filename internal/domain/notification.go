package domain

import (
	"fmt"
	"strings"
	"time"
)

type NotificationID string

type Notification struct {
	ID        NotificationID
	Message   string
	Read      bool
	CreatedAt time.Time
}

func (n Notification) Validate() error {
	if strings.TrimSpace(string(n.ID)) == "" {
		return fmt.Errorf("id is required")
	}

	return nil
}

// NotificationBatch is one page of notifications; Total is the unread count reported by the server.
type NotificationBatch struct {
	Notifications []Notification
	Total         int
}
