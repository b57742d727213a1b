package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLendSetsLoanFields(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "")

	performed, err := Lend(b, "  Alice  ", 14)
	require.NoError(t, err)
	require.True(t, performed)

	assert.False(t, b.Available)
	require.NotNil(t, b.Borrower)
	assert.Equal(t, "Alice", *b.Borrower, "borrower name is trimmed")
	require.NotNil(t, b.LoanedAt)
	require.NotNil(t, b.DueAt)
	assert.True(t, b.DueAt.Equal(b.LoanedAt.AddDate(0, 0, 14)))
}

func TestLendDefaultPeriod(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "")

	performed, err := Lend(b, "Alice", 0)
	require.NoError(t, err)
	require.True(t, performed)
	assert.True(t, b.DueAt.Equal(b.LoanedAt.AddDate(0, 0, DefaultLoanDays)))
}

func TestLendBlankBorrower(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "")

	for _, name := range []string{"", "   ", "\t\n"} {
		performed, err := Lend(b, name, 14)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.False(t, performed)
		assert.True(t, b.Available, "record stays untouched")
	}
}

func TestLendAlreadyLoaned(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "")
	_, err := Lend(b, "Alice", 14)
	require.NoError(t, err)

	performed, err := Lend(b, "Bob", 14)
	require.NoError(t, err, "a no-op lend is an outcome, not an error")
	assert.False(t, performed)
	assert.Equal(t, "Alice", *b.Borrower)
}

func TestLendReturnRoundTrip(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "")

	performed, err := Lend(b, "Alice", 14)
	require.NoError(t, err)
	require.True(t, performed)

	assert.True(t, Return(b))
	assert.True(t, b.Available)
	assert.Nil(t, b.Borrower)
	assert.Nil(t, b.LoanedAt)
	assert.Nil(t, b.DueAt)
}

func TestReturnAvailableBook(t *testing.T) {
	b := NewBook("1984", "George Orwell", "111", "")
	assert.False(t, Return(b))
	assert.True(t, b.Available)
}
