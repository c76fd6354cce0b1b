package db

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rooban25/expense-tracker/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := NewStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(store.Close)
	return store
}

func TestCreateAndGetUser(t *testing.T) {
	store := newTestStorage(t)

	user, err := store.CreateUser("testuser", "password123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "testuser", user.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")),
		"stored password is not a hash of the plaintext")

	fetched, err := store.GetUserByUsername("testuser")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, user.ID, fetched.ID)
	assert.Equal(t, user.Password, fetched.Password)

	fetched, err = store.GetUserByUsername("nonexistent")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.CreateUser("testuser", "password123")
	require.NoError(t, err)

	_, err = store.CreateUser("testuser", "otherpassword")
	assert.Error(t, err, "uniqueness violation must surface as a store error")
}

func TestTransactionCRUD(t *testing.T) {
	store := newTestStorage(t)

	tx := &models.Transaction{
		Type:        "expense",
		Category:    "groceries",
		Amount:      42.50,
		Date:        "2024-11-03",
		Description: "weekly shopping",
	}
	require.NoError(t, store.CreateTransaction(tx))
	assert.NotZero(t, tx.ID)

	fetched, err := store.GetTransaction(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, *tx, *fetched)

	fetched, err = store.GetTransaction(999)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	tx.Amount = 50.00
	tx.Category = "food"
	updated, err := store.UpdateTransaction(tx)
	require.NoError(t, err)
	assert.True(t, updated)

	fetched, err = store.GetTransaction(tx.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, 50.00, fetched.Amount)
	assert.Equal(t, "food", fetched.Category)

	updated, err = store.UpdateTransaction(&models.Transaction{ID: 999, Type: "income", Category: "x", Amount: 1, Date: "2024-01-01"})
	require.NoError(t, err)
	assert.False(t, updated, "update of a missing row must report zero rows affected")

	deleted, err := store.DeleteTransaction(tx.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	fetched, err = store.GetTransaction(tx.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	deleted, err = store.DeleteTransaction(tx.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGetTransactionsPagination(t *testing.T) {
	store := newTestStorage(t)

	for i := 1; i <= 12; i++ {
		tx := &models.Transaction{
			Type:     "expense",
			Category: "misc",
			Amount:   float64(i),
			Date:     fmt.Sprintf("2024-01-%02d", i),
		}
		require.NoError(t, store.CreateTransaction(tx))
		assert.Equal(t, i, tx.ID)
	}

	page, err := store.GetTransactions(1, 10)
	require.NoError(t, err)
	assert.Len(t, page, 10)
	assert.Equal(t, 1, page[0].ID)

	page, err = store.GetTransactions(2, 5)
	require.NoError(t, err)
	require.Len(t, page, 5)
	for i, tx := range page {
		assert.Equal(t, 6+i, tx.ID, "page 2 with limit 5 must start at row 6")
	}

	page, err = store.GetTransactions(4, 5)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestGetSummary(t *testing.T) {
	store := newTestStorage(t)

	fixtures := []models.Transaction{
		{Type: "income", Category: "salary", Amount: 100, Date: "2024-01-10"},
		{Type: "expense", Category: "groceries", Amount: 40, Date: "2024-01-15"},
		{Type: "expense", Category: "transport", Amount: 25, Date: "2024-02-01"},
	}
	for i := range fixtures {
		require.NoError(t, store.CreateTransaction(&fixtures[i]))
	}

	summary, err := store.GetSummary("", "", "")
	require.NoError(t, err)
	require.NotNil(t, summary.TotalIncome)
	require.NotNil(t, summary.TotalExpense)
	require.NotNil(t, summary.Balance)
	assert.Equal(t, 100.0, *summary.TotalIncome)
	assert.Equal(t, 65.0, *summary.TotalExpense)
	assert.Equal(t, 35.0, *summary.Balance)

	summary, err = store.GetSummary("2024-01-01", "2024-01-31", "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, *summary.TotalIncome)
	assert.Equal(t, 40.0, *summary.TotalExpense)
	assert.Equal(t, 60.0, *summary.Balance)

	summary, err = store.GetSummary("", "", "transport")
	require.NoError(t, err)
	assert.Equal(t, 0.0, *summary.TotalIncome)
	assert.Equal(t, 25.0, *summary.TotalExpense)
	assert.Equal(t, -25.0, *summary.Balance)

	// No matching rows: the uncoalesced sums stay null.
	summary, err = store.GetSummary("2030-01-01", "", "")
	require.NoError(t, err)
	assert.Nil(t, summary.TotalIncome)
	assert.Nil(t, summary.TotalExpense)
	assert.Nil(t, summary.Balance)
}

func TestGetMonthlyReport(t *testing.T) {
	store := newTestStorage(t)

	fixtures := []models.Transaction{
		{Type: "expense", Category: "groceries", Amount: 30, Date: "2024-11-03"},
		{Type: "expense", Category: "groceries", Amount: 20, Date: "2024-11-21"},
		{Type: "expense", Category: "transport", Amount: 15, Date: "2024-11-05"},
		{Type: "expense", Category: "groceries", Amount: 10, Date: "2024-12-01"},
		{Type: "income", Category: "salary", Amount: 1000, Date: "2024-11-01"},
	}
	for i := range fixtures {
		require.NoError(t, store.CreateTransaction(&fixtures[i]))
	}

	report, err := store.GetMonthlyReport()
	require.NoError(t, err)
	require.Len(t, report, 3, "income rows must not appear, same-month groups must merge")

	totals := map[string]float64{}
	for _, entry := range report {
		totals[entry.Month+"/"+entry.Category] = entry.TotalSpending
	}
	assert.Equal(t, 50.0, totals["2024-11/groceries"])
	assert.Equal(t, 15.0, totals["2024-11/transport"])
	assert.Equal(t, 10.0, totals["2024-12/groceries"])
}
