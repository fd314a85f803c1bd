package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para crear un gasto.
type CreateExpenseRequest struct {
	Category    string          `json:"category"`
	Date        *time.Time      `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Recurring   string          `json:"recurring"`
	Description string          `json:"description"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest entrada para actualizar un gasto.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category"`
	Date        *time.Time       `json:"date"`
	Amount      *decimal.Decimal `json:"amount"`
	Recurring   *string          `json:"recurring"`
	Description *string          `json:"description"`
	Notes       *string          `json:"notes"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Recurring   string          `json:"recurring"`
	Description string          `json:"description,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseListResponse lista de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Total int               `json:"total"`
}
