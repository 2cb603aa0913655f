package inventory

import "errors"

// Sentinel errors for the operation taxonomy. Callers classify with
// errors.Is; detail is attached at the point of failure via %w wrapping.
var (
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an unknown item or size.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a duplicate identifier on create.
	ErrConflict = errors.New("already exists")
)

// IsDomainError reports whether err belongs to the taxonomy above, i.e.
// should surface as a tool error rather than an internal failure.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict)
}
