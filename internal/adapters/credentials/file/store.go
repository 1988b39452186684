package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports"
)

const (
	storeDirMode    = 0o700
	credentialMode  = 0o600
	tempFilePattern = ".session-*.tmp"
)

// Store keeps the credential in a single file.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Save(ctx context.Context, credential string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	credential = strings.TrimSpace(credential)
	if credential == "" {
		return errors.New("credential is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, storeDirMode); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp credential file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if err := tempFile.Chmod(credentialMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp credential file: %w", err)
	}
	if _, err := tempFile.WriteString(credential); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp credential file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp credential file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace credential file: %w", err)
	}
	cleanup = false

	return nil
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("credential file %q: %w", s.path, domain.ErrCredentialNotFound)
		}
		return "", fmt.Errorf("read credential file %q: %w", s.path, err)
	}

	credential := strings.TrimSpace(string(data))
	if credential == "" {
		return "", fmt.Errorf("credential file %q is empty: %w", s.path, domain.ErrCredentialNotFound)
	}

	return credential, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete credential file %q: %w", s.path, err)
	}

	return nil
}
