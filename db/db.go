package db

import (
	"database/sql"
	"strings"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/rooban25/expense-tracker/models"
)

type Storage struct {
	DB *sql.DB
}

// NewStorage opens the database file at path and provisions the schema.
func NewStorage(path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		type TEXT,
		category TEXT,
		amount REAL,
		date TEXT,
		description TEXT
	)`)
	if err != nil {
		return nil, err
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() {
	s.DB.Close()
}

// CreateUser hashes the password with bcrypt and inserts the user.
// A duplicate username surfaces as the driver's uniqueness error.
func (s *Storage) CreateUser(username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	res, err := s.DB.Exec("INSERT INTO users (username, password) VALUES (?, ?)", username, string(hash))
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.User{ID: int(id), Username: username, Password: string(hash)}, nil
}

// GetUserByUsername returns nil, nil when no such user exists.
func (s *Storage) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRow("SELECT id, username, password FROM users WHERE username = ?", username).
		Scan(&u.ID, &u.Username, &u.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateTransaction(t *models.Transaction) error {
	res, err := s.DB.Exec(
		"INSERT INTO transactions (type, category, amount, date, description) VALUES (?, ?, ?, ?, ?)",
		t.Type, t.Category, t.Amount, t.Date, t.Description,
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = int(id)
	return nil
}

// GetTransactions returns one page of rows in the store's natural order.
func (s *Storage) GetTransactions(page, limit int) ([]models.Transaction, error) {
	offset := (page - 1) * limit

	rows, err := s.DB.Query(
		"SELECT id, type, category, amount, date, description FROM transactions LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions = []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &t.Date, &t.Description); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransaction returns nil, nil when no row has the given id.
func (s *Storage) GetTransaction(id int) (*models.Transaction, error) {
	var t models.Transaction
	err := s.DB.QueryRow(
		"SELECT id, type, category, amount, date, description FROM transactions WHERE id = ?", id,
	).Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &t.Date, &t.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransaction replaces all fields of the row and reports whether a
// row was actually updated.
func (s *Storage) UpdateTransaction(t *models.Transaction) (bool, error) {
	res, err := s.DB.Exec(
		"UPDATE transactions SET type = ?, category = ?, amount = ?, date = ?, description = ? WHERE id = ?",
		t.Type, t.Category, t.Amount, t.Date, t.Description, t.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Storage) DeleteTransaction(id int) (bool, error) {
	res, err := s.DB.Exec("DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetSummary computes income/expense totals over the rows matching the
// given filters. Empty filter values are skipped; present ones are ANDed.
// The sums are not coalesced, so an empty row set yields null totals.
func (s *Storage) GetSummary(startDate, endDate, category string) (*models.Summary, error) {
	query := `SELECT
		SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END),
		SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END)
	FROM transactions`

	var conds []string
	var args []any
	if startDate != "" {
		conds = append(conds, "date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		conds = append(conds, "date <= ?")
		args = append(args, endDate)
	}
	if category != "" {
		conds = append(conds, "category = ?")
		args = append(args, category)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	var income, expense sql.NullFloat64
	if err := s.DB.QueryRow(query, args...).Scan(&income, &expense); err != nil {
		return nil, err
	}

	summary := &models.Summary{}
	if income.Valid {
		summary.TotalIncome = &income.Float64
	}
	if expense.Valid {
		summary.TotalExpense = &expense.Float64
	}
	if income.Valid && expense.Valid {
		balance := income.Float64 - expense.Float64
		summary.Balance = &balance
	}
	return summary, nil
}

// GetMonthlyReport sums expense rows grouped by year-month and category.
func (s *Storage) GetMonthlyReport() ([]models.MonthlyReport, error) {
	rows, err := s.DB.Query(`SELECT strftime('%Y-%m', date) AS month, category, SUM(amount) AS total_spending
		FROM transactions
		WHERE type = 'expense'
		GROUP BY month, category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report = []models.MonthlyReport{}
	for rows.Next() {
		var r models.MonthlyReport
		if err := rows.Scan(&r.Month, &r.Category, &r.TotalSpending); err != nil {
			return nil, err
		}
		report = append(report, r)
	}
	return report, rows.Err()
}
