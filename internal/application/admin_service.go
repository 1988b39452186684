package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports"
)

// AdminService gates every operation on the admin role in the current claims.
type AdminService struct {
	api      ports.AdminAPI
	sessions *SessionManager
}

func NewAdminService(api ports.AdminAPI, sessions *SessionManager) *AdminService {
	return &AdminService{api: api, sessions: sessions}
}

func (s *AdminService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	if err := s.requireAdmin(); err != nil {
		return domain.Dashboard{}, err
	}

	dashboard, err := s.api.Dashboard(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("admin dashboard: %w", err)
	}
	return dashboard, nil
}

func (s *AdminService) Mint(ctx context.Context, cmd MintCommand) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	address := strings.TrimSpace(cmd.Address)
	if address == "" {
		return fmt.Errorf("address is required")
	}
	if cmd.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	if err := s.api.Mint(ctx, domain.Mint{Address: address, Amount: cmd.Amount}); err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	return nil
}

func (s *AdminService) Transfer(ctx context.Context, cmd TransferCommand) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	to := strings.TrimSpace(cmd.To)
	if to == "" {
		return fmt.Errorf("recipient is required")
	}
	if cmd.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	if err := s.api.Transfer(ctx, domain.Transfer{To: to, Amount: cmd.Amount}); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	return nil
}

func (s *AdminService) BalanceOf(ctx context.Context, address string) (float64, error) {
	if err := s.requireAdmin(); err != nil {
		return 0, err
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, fmt.Errorf("address is required")
	}

	balance, err := s.api.BalanceOf(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", address, err)
	}
	return balance, nil
}

func (s *AdminService) requireAdmin() error {
	session, ok := s.sessions.Current()
	if !ok {
		return domain.ErrNotLoggedIn
	}
	if !session.Claims.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
