package library

import (
	"fmt"
	"time"
)

// DefaultGenre is assigned when a book is added without a genre.
const DefaultGenre = "General"

// Book represents one catalog entry and its current loan state.
// The three loan fields are set together while the book is out and are all
// nil while it sits on the shelf; Available mirrors that.
type Book struct {
	Title     string     `json:"title" db:"title"`
	Author    string     `json:"author" db:"author"`
	ISBN      string     `json:"isbn" db:"isbn"`
	Genre     string     `json:"genre" db:"genre"`
	Available bool       `json:"available" db:"available"`
	LoanedAt  *time.Time `json:"loanedAt" db:"loaned_at"`
	DueAt     *time.Time `json:"dueAt" db:"due_at"`
	Borrower  *string    `json:"borrower" db:"borrower"`
}

// NewBook creates a shelf-ready record. A blank genre defaults to DefaultGenre.
func NewBook(title, author, isbn, genre string) *Book {
	if genre == "" {
		genre = DefaultGenre
	}
	return &Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Genre:     genre,
		Available: true,
	}
}

// Status renders the loan state for display.
func (b *Book) Status() string {
	if b.Available || b.Borrower == nil {
		return "Available"
	}
	return "Loaned to " + *b.Borrower
}

// String formats the book for one-line listings.
func (b *Book) String() string {
	return fmt.Sprintf("[%s] %q by %s - %s", b.ISBN, b.Title, b.Author, b.Status())
}

// validate checks that a record read from storage is complete and that its
// loan fields agree with the availability flag.
func (b *Book) validate() error {
	if b.Title == "" || b.Author == "" || b.ISBN == "" {
		return fmt.Errorf("record %q is missing required fields: %w", b.ISBN, ErrCorruptData)
	}
	switch {
	case b.Available && (b.LoanedAt != nil || b.DueAt != nil || b.Borrower != nil):
		return fmt.Errorf("record %q is available but carries loan fields: %w", b.ISBN, ErrCorruptData)
	case !b.Available && (b.LoanedAt == nil || b.DueAt == nil || b.Borrower == nil):
		return fmt.Errorf("record %q is loaned but missing loan fields: %w", b.ISBN, ErrCorruptData)
	}
	return nil
}
