package library

import (
	"fmt"
	"strings"
)

// Catalog owns the ordered book collection and writes the full snapshot to
// its store after every successful mutation. It is a single-user object:
// one goroutine, one process, one snapshot file.
type Catalog struct {
	store    Store
	loanDays int
	books    []*Book
}

// NewCatalog loads the existing snapshot from store. A missing snapshot
// yields an empty catalog; a snapshot that cannot be read back is fatal and
// surfaces as ErrCorruptData. loanDays <= 0 falls back to DefaultLoanDays.
func NewCatalog(store Store, loanDays int) (*Catalog, error) {
	if loanDays <= 0 {
		loanDays = DefaultLoanDays
	}
	books, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Catalog{store: store, loanDays: loanDays, books: books}, nil
}

// Len reports the number of books in the catalog.
func (c *Catalog) Len() int { return len(c.books) }

// Books returns the full collection in insertion order.
func (c *Catalog) Books() []*Book { return c.books }

// ------------------ CRUD ------------------

// Add registers a new book and persists the catalog. The ISBN must be
// unused; a blank genre defaults to DefaultGenre.
func (c *Catalog) Add(title, author, isbn, genre string) (*Book, error) {
	if _, ok := c.FindByISBN(isbn); ok {
		return nil, fmt.Errorf("book with ISBN %q already exists: %w", isbn, ErrDuplicateKey)
	}
	b := NewBook(title, author, isbn, genre)
	c.books = append(c.books, b)
	if err := c.store.Save(c.books); err != nil {
		return nil, err
	}
	return b, nil
}

// Remove deletes the book with the given ISBN and persists the catalog.
// It reports false, without error, when the ISBN is unknown or the book is
// currently loaned.
func (c *Catalog) Remove(isbn string) (bool, error) {
	for i, b := range c.books {
		if b.ISBN != isbn {
			continue
		}
		if !b.Available {
			return false, nil
		}
		c.books = append(c.books[:i], c.books[i+1:]...)
		if err := c.store.Save(c.books); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// ------------------ Search ------------------

// FindByISBN looks up a book by exact ISBN.
func (c *Catalog) FindByISBN(isbn string) (*Book, bool) {
	for _, b := range c.books {
		if b.ISBN == isbn {
			return b, true
		}
	}
	return nil, false
}

// FindByTitle returns books whose title contains q, case-insensitively,
// in catalog order.
func (c *Catalog) FindByTitle(q string) []*Book {
	q = strings.ToLower(q)
	var matches []*Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// FindByAuthor returns books whose author contains q, case-insensitively,
// in catalog order.
func (c *Catalog) FindByAuthor(q string) []*Book {
	q = strings.ToLower(q)
	var matches []*Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Author), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// Filter returns books matching q in any text field (title, author, ISBN or
// genre), case-insensitively, in catalog order.
func (c *Catalog) Filter(q string) []*Book {
	q = strings.ToLower(q)
	var matches []*Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.ISBN), q) ||
			strings.Contains(strings.ToLower(b.Genre), q) {
			matches = append(matches, b)
		}
	}
	return matches
}

// ListAvailable returns the books currently on the shelf, in catalog order.
func (c *Catalog) ListAvailable() []*Book {
	var out []*Book
	for _, b := range c.books {
		if b.Available {
			out = append(out, b)
		}
	}
	return out
}

// ListLoaned returns the books currently out, in catalog order.
func (c *Catalog) ListLoaned() []*Book {
	var out []*Book
	for _, b := range c.books {
		if !b.Available {
			out = append(out, b)
		}
	}
	return out
}

// ------------------ Circulation ------------------

// Lend loans the book with the given ISBN to borrower for days (the
// catalog's configured period when days <= 0) and persists the catalog when
// the loan was actually performed.
func (c *Catalog) Lend(isbn, borrower string, days int) (bool, error) {
	b, ok := c.FindByISBN(isbn)
	if !ok {
		return false, fmt.Errorf("no book with ISBN %q: %w", isbn, ErrNotFound)
	}
	if days <= 0 {
		days = c.loanDays
	}
	performed, err := Lend(b, borrower, days)
	if err != nil || !performed {
		return performed, err
	}
	return true, c.store.Save(c.books)
}

// Return records the return of the book with the given ISBN and persists
// the catalog when the return was actually performed.
func (c *Catalog) Return(isbn string) (bool, error) {
	b, ok := c.FindByISBN(isbn)
	if !ok {
		return false, fmt.Errorf("no book with ISBN %q: %w", isbn, ErrNotFound)
	}
	if !Return(b) {
		return false, nil
	}
	return true, c.store.Save(c.books)
}

// ------------------ Statistics ------------------

// Stats summarizes the catalog: totals by availability and per-genre counts.
type Stats struct {
	Total     int
	Available int
	Loaned    int
	Genres    map[string]int
}

// Stats computes the summary in a single pass over the collection.
func (c *Catalog) Stats() Stats {
	s := Stats{Genres: make(map[string]int)}
	for _, b := range c.books {
		s.Total++
		if b.Available {
			s.Available++
		} else {
			s.Loaned++
		}
		s.Genres[b.Genre]++
	}
	return s
}
