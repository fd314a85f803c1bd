package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Code          string          `json:"code" validate:"required,min=1,max=100"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	InitialStock  int64           `json:"initial_stock"`
	MinStock      int64           `json:"min_stock"`
	Image         string          `json:"image"`
}

// UpdateProductRequest entrada para actualizar un producto.
//
// Stock es el "stock actual" tal como lo ve el usuario en el formulario de
// edición; si difiere del proyectado, el caso de uso genera un movimiento de
// ajuste. InitialStock no es editable.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	MinStock      *int64           `json:"min_stock"`
	Image         *string          `json:"image"`
	Stock         *int64           `json:"stock"`
}

// ProductResponse salida de un producto. Stock es el stock proyectado desde el
// ledger (derivado, nunca persistido).
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	InitialStock  int64           `json:"initial_stock"`
	MinStock      int64           `json:"min_stock"`
	Stock         int64           `json:"stock"`
	LowStock      bool            `json:"low_stock"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos con su stock derivado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
