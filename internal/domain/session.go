package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Claims is the identity payload carried inside a credential.
type Claims struct {
	UserID    string
	Username  string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (c Claims) Expired(now time.Time) bool {
	if c.ExpiresAt.IsZero() {
		return true
	}

	return !c.ExpiresAt.After(now)
}

func (c Claims) IsAdmin() bool {
	return strings.EqualFold(string(c.Role), string(RoleAdmin))
}

// Session pairs a raw credential with the claims decoded from it.
type Session struct {
	Credential string
	Claims     Claims
}

func (s Session) Anonymous() bool {
	return strings.TrimSpace(s.Credential) == ""
}
