package models

type RegisterResponse struct {
	ID      int    `json:"id" example:"1"`
	Message string `json:"message" example:"User registered successfully"`
}

type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type CreateTransactionResponse struct {
	ID      int    `json:"id" example:"1"`
	Message string `json:"message" example:"Transaction added successfully"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Transaction updated successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"error"`
}

// Summary totals are pointers because SUM over an empty row set is NULL
// and the API surfaces that null rather than coalescing to zero.
type Summary struct {
	TotalIncome  *float64 `json:"total_income" example:"1500.00"`
	TotalExpense *float64 `json:"total_expense" example:"640.25"`
	Balance      *float64 `json:"balance" example:"859.75"`
}

type MonthlyReport struct {
	Month         string  `json:"month" example:"2024-11"`
	Category      string  `json:"category" example:"groceries"`
	TotalSpending float64 `json:"total_spending" example:"210.40"`
}
