package booking

import "errors"

var (
	// ErrNotFound is returned when a referenced reservation or person
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRangeConflict is the ledger-level rejection of an overlapping
	// range write. The service maps it to a DuplicateRangeError before
	// it reaches callers.
	ErrRangeConflict = errors.New("reservation dates conflict")
)

// ValidationError reports input that violates a booking policy rule or is
// structurally incomplete. The reason is safe to show to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// DuplicateRangeError reports a write rejected because the requested dates
// overlap an existing reservation. The message is safe to show to the caller.
type DuplicateRangeError struct {
	Message string
}

func (e *DuplicateRangeError) Error() string { return e.Message }

// StorageError wraps any ledger failure that is not a range conflict. Its
// message carries no storage detail; the cause stays reachable for logging.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string { return "storage unavailable" }

func (e *StorageError) Unwrap() error { return e.Cause }
