package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un movimiento del ledger.
// Quantity lleva signo solo para ajustes; Date es la fecha de negocio (si
// viene vacía se usa el momento actual).
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Type      string          `json:"type" validate:"required,oneof=sale purchase adjustment"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Date      *time.Time      `json:"date"`
	Notes     string          `json:"notes"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	ProductCode  string          `json:"product_code"`
	ProductImage string          `json:"product_image,omitempty"`
	Type         string          `json:"type"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MovementListResponse lista de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
