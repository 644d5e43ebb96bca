package library

import "errors"

// Failure kinds returned by the Library facade and registries. Callers match
// with errors.Is; the wrapped message carries the specifics for display.
var (
	// ErrBookNotFound reports an ISBN with no catalog record.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookUnavailable reports a checkout attempt on a book that is
	// already on loan.
	ErrBookUnavailable = errors.New("book unavailable")

	// ErrUserNotFound reports a library ID with no registered user.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotOnLoan reports a check-in for a (library ID, ISBN) pair that the
	// ledger does not record as an outstanding loan.
	ErrNotOnLoan = errors.New("book not on loan")

	// ErrDuplicateISBN reports an attempt to add a book under an ISBN that
	// is already cataloged. The existing record is never overwritten.
	ErrDuplicateISBN = errors.New("duplicate isbn")

	// ErrInvalidGenre reports a genre kind other than Fiction or Nonfiction.
	ErrInvalidGenre = errors.New("invalid genre")
)
