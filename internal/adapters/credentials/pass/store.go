package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/chesswager-cli/internal/domain"
	"github.com/bnema/chesswager-cli/internal/ports"
)

const DefaultEntry = "chesswager/session"

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps the credential in a single pass(1) entry.
type Store struct {
	entry string
	run   runFunc
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(entry string) *Store {
	if strings.TrimSpace(entry) == "" {
		entry = DefaultEntry
	}
	return &Store{entry: entry, run: runPassCommand}
}

func (s *Store) Save(ctx context.Context, credential string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, strings.TrimSpace(credential)+"\n", "insert", "-m", "-f", s.entry)
	if err != nil {
		return formatError("save", s.entry, err, stderr)
	}

	return nil
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", s.entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return "", fmt.Errorf("pass entry %q: %w", s.entry, domain.ErrCredentialNotFound)
		}
		return "", formatError("load", s.entry, err, stderr)
	}

	credential := strings.TrimSpace(stdout)
	if credential == "" {
		return "", fmt.Errorf("pass entry %q is empty: %w", s.entry, domain.ErrCredentialNotFound)
	}

	return credential, nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", s.entry)
	if err != nil {
		if strings.Contains(stderr, "is not in the password store") {
			return nil
		}
		return formatError("clear", s.entry, err, stderr)
	}

	return nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, entry string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, entry, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, entry, err, stderr)
}
