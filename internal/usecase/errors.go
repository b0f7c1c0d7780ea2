package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/octofit-tracker/internal/domain/leaderboard"
	"github.com/riskibarqy/octofit-tracker/internal/domain/team"
	"github.com/riskibarqy/octofit-tracker/internal/domain/user"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

func isDuplicateError(err error) bool {
	return errors.Is(err, user.ErrDuplicate) ||
		errors.Is(err, team.ErrDuplicate) ||
		errors.Is(err, leaderboard.ErrDuplicate)
}

// storeError wraps a repository write error, turning uniqueness violations into ErrInvalidInput.
func storeError(op string, err error) error {
	if isDuplicateError(err) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s id=%s", ErrNotFound, kind, id)
}

func requiredParam(name string) error {
	return fmt.Errorf("%w: %s parameter is required", ErrInvalidInput, name)
}
