package errs

import (
	"errors"
)

// Not-found class: callers map these to 404.
var (
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrCopyNotFound       = errors.New("book copy not found")
	ErrRentalNotFound     = errors.New("rental not found")
)

// Business-rule violations: user-facing reasons, never retried.
var (
	ErrBlackListedSubscriber = errors.New("subscriber is blacklisted")
	ErrMaxCopiesReached      = errors.New("max allowed copies reached")
	ErrInactiveSubscriber    = errors.New("subscription inactive for rental period")
	ErrBookCopyUnavailable   = errors.New("book copy is not available for rental")
	ErrBookAlreadyRented     = errors.New("subscriber already has this copy rented")
	ErrAlreadyReturned       = errors.New("copy already returned")
	ErrExtendNotAllowed      = errors.New("extension not allowed")
	ErrPenaltyShouldBePaid   = errors.New("outstanding penalty must be paid first")
	ErrSubscriptionOverlap   = errors.New("subscription overlaps the current one")
	ErrDuplicateName         = errors.New("name already exists")
	ErrDuplicateBook         = errors.New("book with this title and author already exists")
	ErrDuplicateSubscriber   = errors.New("subscriber identity field already in use")
)

// Validation class.
var (
	ErrInvalidDateRange = errors.New("invalid date range")
)

// ErrStorage classifies transaction/connectivity faults; the only
// class eligible for an automatic retry of the atomic section.
var ErrStorage = errors.New("storage error")

type storageError struct {
	cause error
}

func (e storageError) Error() string { return "storage error: " + e.cause.Error() }

func (e storageError) Unwrap() error { return e.cause }

func (e storageError) Is(target error) bool { return target == ErrStorage }

// Storage wraps a driver fault so that errors.Is(err, ErrStorage)
// holds while the underlying pg error stays reachable via errors.As.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return storageError{cause: err}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrSubscriberNotFound) ||
		errors.Is(err, ErrBookNotFound) ||
		errors.Is(err, ErrCopyNotFound) ||
		errors.Is(err, ErrRentalNotFound)
}

func IsBusinessRule(err error) bool {
	for _, e := range []error{
		ErrBlackListedSubscriber, ErrMaxCopiesReached, ErrInactiveSubscriber,
		ErrBookCopyUnavailable, ErrBookAlreadyRented, ErrAlreadyReturned,
		ErrExtendNotAllowed, ErrPenaltyShouldBePaid, ErrSubscriptionOverlap,
		ErrDuplicateName, ErrDuplicateBook, ErrDuplicateSubscriber,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
