package domain

import "errors"

var (
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrSessionExpired      = errors.New("session expired")
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrForbidden           = errors.New("forbidden for current role")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
