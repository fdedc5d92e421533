package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEntryNotFound is returned by read operations when no entry matches.
var ErrEntryNotFound = errors.New("entry not found")

// ValidationError reports the required form fields that were missing or blank
// in a submission. It never reaches storage or the database.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Missing, ", "))
}

// DisallowedTypeError reports an attachment whose declared media type is not
// on the allow-list. It is raised before any upload is attempted and is a
// client input fault, not an upload failure.
type DisallowedTypeError struct {
	Filename    string
	ContentType string
}

func (e *DisallowedTypeError) Error() string {
	return fmt.Sprintf("attachment %q has disallowed content type %q", e.Filename, e.ContentType)
}

// UploadError wraps a storage-service failure for one attachment in a batch.
// When it is returned the whole batch is treated as failed and no entry row
// is written.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
