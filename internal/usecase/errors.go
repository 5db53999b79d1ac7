package usecase

import (
	"errors"
)

// Service-level sentinels. Business rejections are NOT errors: a rejected
// admission comes back as data in the AdmissionDecision. These cover the
// remaining taxonomy: bad input, missing records, and retryable contention.
var (
	// ErrValidation marks malformed or out-of-range input. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a missing record.
	ErrNotFound = errors.New("not found")

	// ErrBusy marks a lock-acquisition timeout on the admission path. The
	// caller may retry the whole AdmitAndCommit with backoff; no partial
	// commit has happened.
	ErrBusy = errors.New("booking slot busy")
)
