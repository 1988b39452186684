package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports"
)

type AuthService struct {
	api      ports.AuthAPI
	sessions *SessionManager
}

func NewAuthService(api ports.AuthAPI, sessions *SessionManager) *AuthService {
	return &AuthService{api: api, sessions: sessions}
}

func (s *AuthService) Register(ctx context.Context, cmd RegisterCommand) (domain.Session, error) {
	if strings.TrimSpace(cmd.Username) == "" || strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return domain.Session{}, fmt.Errorf("username, email and password are required")
	}

	credential, err := s.api.Register(ctx, domain.Registration{
		Username: strings.TrimSpace(cmd.Username),
		Email:    strings.TrimSpace(cmd.Email),
		Password: cmd.Password,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("register: %w", err)
	}

	return s.startSession(ctx, credential)
}

func (s *AuthService) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	if strings.TrimSpace(cmd.Email) == "" || cmd.Password == "" {
		return domain.Session{}, fmt.Errorf("email and password are required")
	}

	credential, err := s.api.Login(ctx, domain.LoginCredentials{
		Email:    strings.TrimSpace(cmd.Email),
		Password: cmd.Password,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}

	return s.startSession(ctx, credential)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

func (s *AuthService) Profile(ctx context.Context) (domain.Profile, error) {
	if _, ok := s.sessions.Current(); !ok {
		return domain.Profile{}, domain.ErrNotLoggedIn
	}

	profile, err := s.api.Profile(ctx)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("fetch profile: %w", err)
	}
	return profile, nil
}

func (s *AuthService) startSession(ctx context.Context, credential string) (domain.Session, error) {
	if err := s.sessions.Login(ctx, credential); err != nil {
		return domain.Session{}, err
	}

	session, ok := s.sessions.Current()
	if !ok {
		return domain.Session{}, domain.ErrNotLoggedIn
	}
	return session, nil
}
