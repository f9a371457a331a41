package services

import "errors"

// Engine error taxonomy. Controllers map these onto HTTP statuses; anything
// else is a 500.
var (
	// ErrValidation covers malformed templates, counts and dates. The
	// operation is aborted with no partial writes.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedMode means benchmark mode was requested before the user
	// set a typical week.
	ErrUnsupportedMode = errors.New("typical week not set")

	// ErrAtomicWrite means the projector's batch (template + up to 7 logs)
	// could not be committed. Nothing was written; callers retry the whole
	// batch or give up.
	ErrAtomicWrite = errors.New("atomic write failed")
)
