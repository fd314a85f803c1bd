package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de gasto conocidas. Cualquier valor no reconocido (incluido el
// vacío) se normaliza a ExpenseCategoryOther para no romper con datos legados.
const (
	ExpenseCategoryRent        = "rent"
	ExpenseCategoryUtilities   = "utilities"
	ExpenseCategoryPayroll     = "payroll"
	ExpenseCategorySecurity    = "security"
	ExpenseCategoryTransport   = "transport"
	ExpenseCategorySupplies    = "supplies"
	ExpenseCategoryMaintenance = "maintenance"
	ExpenseCategoryOther       = "other"
)

// Recurrencia de un gasto.
const (
	RecurringOnce    = "once"
	RecurringWeekly  = "weekly"
	RecurringMonthly = "monthly"
)

// NormalizeExpenseCategory devuelve la categoría si es conocida, u "other".
func NormalizeExpenseCategory(c string) string {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryUtilities, ExpenseCategoryPayroll,
		ExpenseCategorySecurity, ExpenseCategoryTransport, ExpenseCategorySupplies,
		ExpenseCategoryMaintenance, ExpenseCategoryOther:
		return c
	}
	return ExpenseCategoryOther
}

// NormalizeRecurring devuelve la recurrencia si es conocida, u "once".
func NormalizeRecurring(r string) string {
	switch r {
	case RecurringOnce, RecurringWeekly, RecurringMonthly:
		return r
	}
	return RecurringOnce
}

// Expense es un gasto operativo del negocio. No está ligado a ningún producto:
// contribuye solo a los agregados financieros, nunca al stock.
type Expense struct {
	ID          string
	OwnerID     string
	Category    string
	Date        time.Time
	Amount      decimal.Decimal // siempre >= 0
	Recurring   string          // once, weekly, monthly
	Description string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
