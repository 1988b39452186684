package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/chesswager-cli/internal/adapters/credentials/file"
	passstore "github.com/bnema/chesswager-cli/internal/adapters/credentials/pass"
	"github.com/bnema/chesswager-cli/internal/ports"
)

type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary ports.CredentialStore, fallback ports.CredentialStore) *Store {
	store, err := NewStoreChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return store
}

func NewStoreChecked(primary ports.CredentialStore, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(passEntry string, filePath string) (*Store, error) {
	return NewStoreChecked(passstore.NewStore(passEntry), filestore.NewStore(filePath))
}

func (s *Store) Save(ctx context.Context, credential string) error {
	err := s.primary.Save(ctx, credential)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, credential)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func (s *Store) Load(ctx context.Context) (string, error) {
	credential, err := s.primary.Load(ctx)
	if err == nil {
		return credential, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackCredential, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackCredential, nil
	}

	return "", fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

// Clear removes the credential from both backends so neither keeps a stale copy.
func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	if err != nil && shouldSkipFallback(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Clear(ctx)
	if err == nil && fallbackErr == nil {
		return nil
	}
	if err == nil {
		return fmt.Errorf("fallback backend clear failed: %w", fallbackErr)
	}
	if fallbackErr == nil {
		return fmt.Errorf("primary backend clear failed: %w", err)
	}

	return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
