package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxbridge/taxbridge/dto"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "data", "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Init())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveTransactions(t *testing.T) {
	s := openTestStore(t)

	records := []dto.Transaction{
		{Date: "2024-01-03", Description: "UPI-SWIGGY", Amount: 450.00, Category: "food", GSTRate: 5, GSTInput: 22.50},
		{Date: "2024-01-15", Description: "PRINTER INK", Amount: 2500.00, Category: "office", GSTRate: 12, GSTInput: 300.00, Deductible: true},
	}
	require.NoError(t, s.SaveTransactions("stmt-1", records))

	n, err := s.CountTransactions("stmt-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CountTransactions("stmt-2")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSaveTransactionsEmptyStatement(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveTransactions("stmt-empty", nil))

	n, err := s.CountTransactions("stmt-empty")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStatementsAccumulate(t *testing.T) {
	s := openTestStore(t)

	rec := []dto.Transaction{{Description: "A", Amount: 1}}
	require.NoError(t, s.SaveTransactions("stmt-1", rec))
	require.NoError(t, s.SaveTransactions("stmt-1", rec))

	n, err := s.CountTransactions("stmt-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
