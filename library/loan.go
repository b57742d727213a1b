package library

import (
	"fmt"
	"strings"
	"time"
)

// DefaultLoanDays is the loan period applied when none is given.
const DefaultLoanDays = 14

// Lend hands the book to borrower for the given number of days
// (DefaultLoanDays when days <= 0). It reports false and leaves the record
// untouched when the book is already out; that is an outcome, not an error.
func Lend(b *Book, borrower string, days int) (bool, error) {
	name := strings.TrimSpace(borrower)
	if name == "" {
		return false, fmt.Errorf("borrower name cannot be empty: %w", ErrInvalidArgument)
	}

	if !b.Available {
		return false, nil
	}

	if days <= 0 {
		days = DefaultLoanDays
	}
	now := time.Now()
	due := now.AddDate(0, 0, days)

	b.Available = false
	b.Borrower = &name
	b.LoanedAt = &now
	b.DueAt = &due
	return true, nil
}

// Return puts the book back on the shelf and clears the loan fields.
// It reports false when the book was not out.
func Return(b *Book) bool {
	if b.Available {
		return false
	}

	b.Available = true
	b.Borrower = nil
	b.LoanedAt = nil
	b.DueAt = nil
	return true
}
