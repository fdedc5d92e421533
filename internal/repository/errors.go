package repository

import "fmt"

// SchemaMismatchError reports that the store rejected a statement because the
// table layout does not match what the repository expects (missing column or
// table). This is a configuration fault, not a retryable condition; the
// repository never tries to inspect or alter the schema itself.
type SchemaMismatchError struct {
	Code   string
	Detail string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("store schema mismatch (%s): %s", e.Code, e.Detail)
}

// TransientError wraps connectivity-level store failures (timeouts, pool
// exhaustion, broken connections). The caller of the whole system may retry
// by resubmitting; nothing is retried internally.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient store failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}
