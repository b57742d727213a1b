package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookDefaults(t *testing.T) {
	b := NewBook("Dune", "Frank Herbert", "222", "")

	assert.Equal(t, "Dune", b.Title)
	assert.Equal(t, "Frank Herbert", b.Author)
	assert.Equal(t, "222", b.ISBN)
	assert.Equal(t, DefaultGenre, b.Genre)
	assert.True(t, b.Available)
	assert.Nil(t, b.LoanedAt)
	assert.Nil(t, b.DueAt)
	assert.Nil(t, b.Borrower)
}

func TestBookStatus(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "Science Fiction")
	assert.Equal(t, "Available", b.Status())

	performed, err := Lend(b, "Alice", DefaultLoanDays)
	require.NoError(t, err)
	require.True(t, performed)
	assert.Equal(t, "Loaned to Alice", b.Status())
	assert.Contains(t, b.String(), `"1984" by George Orwell`)
}

func TestBookJSONRoundTrip(t *testing.T) {
	loaned := NewBook("Dune", "Frank Herbert", "222", "Science Fiction")
	_, err := Lend(loaned, "Bob", 7)
	require.NoError(t, err)

	for _, b := range []*Book{NewBook("1984", "George Orwell", "111", ""), loaned} {
		data, err := json.Marshal(b)
		require.NoError(t, err)

		var got Book
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, b.Title, got.Title)
		assert.Equal(t, b.Author, got.Author)
		assert.Equal(t, b.ISBN, got.ISBN)
		assert.Equal(t, b.Genre, got.Genre)
		assert.Equal(t, b.Available, got.Available)
		if b.Available {
			assert.Nil(t, got.Borrower)
		} else {
			require.NotNil(t, got.Borrower)
			assert.Equal(t, *b.Borrower, *got.Borrower)
			assert.True(t, b.LoanedAt.Equal(*got.LoanedAt))
			assert.True(t, b.DueAt.Equal(*got.DueAt))
		}
	}
}

func TestBookJSONExplicitNulls(t *testing.T) {
	data, err := json.Marshal(NewBook("1984", "George Orwell", "111", ""))
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"loanedAt":null`)
	assert.Contains(t, s, `"dueAt":null`)
	assert.Contains(t, s, `"borrower":null`)
}

func TestBookValidate(t *testing.T) {
	now := time.Now()
	alice := "Alice"

	valid := NewBook("1984", "George Orwell", "111", "")
	require.NoError(t, valid.validate())

	tests := []struct {
		name string
		book Book
	}{
		{"missing title", Book{Author: "A", ISBN: "1", Genre: "General", Available: true}},
		{"missing author", Book{Title: "T", ISBN: "1", Genre: "General", Available: true}},
		{"missing isbn", Book{Title: "T", Author: "A", Genre: "General", Available: true}},
		{"available with loan fields", Book{Title: "T", Author: "A", ISBN: "1", Genre: "General", Available: true, Borrower: &alice}},
		{"loaned without borrower", Book{Title: "T", Author: "A", ISBN: "1", Genre: "General", LoanedAt: &now, DueAt: &now}},
		{"loaned without dates", Book{Title: "T", Author: "A", ISBN: "1", Genre: "General", Borrower: &alice}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.book.validate(), ErrCorruptData)
		})
	}
}
