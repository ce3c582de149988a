// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"errors"
	"fmt"

	"inkwell/internal/database"
)

var (
	// ErrForbidden is returned when the acting user lacks the admin role
	// required for a mutation.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned when a referenced entity does not exist.
	// Only updates raise it; deletes are idempotent.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable is surfaced by mutations when no usable
	// database connection exists. Reads may instead degrade to empty
	// results, depending on the service's degraded-reads setting.
	ErrStorageUnavailable = database.ErrUnavailable
)

// ValidationError reports a malformed or missing field in a mutation input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
