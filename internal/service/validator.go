package service

import (
	"strings"

	"entryapi/internal/model"
)

// ValidateEntry confirms the presence of the mandatory identity fields.
// Full name and email address must be non-empty after trimming; every other
// field, including submission_capacity, is passed through verbatim. The
// permissiveness on optional fields mirrors the form contract and is a
// recorded policy choice, not an oversight.
//
// The function performs no I/O and does not mutate the entry.
func ValidateEntry(e *model.Entry) error {
	var missing []string
	if strings.TrimSpace(e.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(e.EmailAddress) == "" {
		missing = append(missing, "email_address")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
