package domain

import "strings"

type ChessLinkStatus struct {
	Connected      bool
	RemoteUsername string
}

// Username is empty unless the account is linked.
func (s ChessLinkStatus) Username() string {
	if !s.Connected {
		return ""
	}

	return strings.TrimSpace(s.RemoteUsername)
}
