package models

type Transaction struct {
	ID          int     `json:"id"`
	Type        string  `json:"type" example:"expense"`
	Category    string  `json:"category" example:"groceries"`
	Amount      float64 `json:"amount" example:"42.50"`
	Date        string  `json:"date" example:"2024-11-03"`
	Description string  `json:"description" example:"weekly shopping"`
}
