package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/chesswager-cli/internal/adapters/api"
	"github.com/bnema/chesswager-cli/internal/domain"
)

var errPleaseLogIn = errors.New("please log in: run `cw login`")

// userError turns session failures into the "please log in" message and
// server-side role rejections into domain.ErrForbidden.
func userError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotLoggedIn) || errors.Is(err, domain.ErrSessionExpired) {
		return errPleaseLogIn
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Unauthorized():
			return fmt.Errorf("%s: %w", apiErr.Message, errPleaseLogIn)
		case apiErr.Forbidden():
			return fmt.Errorf("%s: %w", apiErr.Message, domain.ErrForbidden)
		}
	}

	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
