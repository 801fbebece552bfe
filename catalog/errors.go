package catalog

import (
	"errors"
	"fmt"
)

// Error kinds returned by the catalog service. Handlers map these to HTTP
// statuses; everything else is an internal failure.
var (
	// ErrNotFound covers every broken ownership-chain link and any public
	// fetch of a nonexistent or unpublished menu. One kind on purpose, so
	// responses never reveal which link broke.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers slug collisions and duplicate restaurant-per-owner.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput covers field validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

func conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrConflict)
}
