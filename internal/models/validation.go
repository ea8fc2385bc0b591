package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrValidation is returned by model hooks when a record violates a storage
// constraint. The HTTP layer validates first; the hooks are the second line of
// defense so no invalid row is ever persisted.
var ErrValidation = errors.New("model validation failed")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidEmail reports whether the given string looks like an email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
