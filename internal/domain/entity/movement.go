package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del ledger (value object conceptual).
const (
	MovementTypeSale       = "sale"       // venta: reduce stock
	MovementTypePurchase   = "purchase"   // compra: aumenta stock
	MovementTypeAdjustment = "adjustment" // ajuste: cantidad con signo
)

// IsValidMovementType reporta si el tipo pertenece al conjunto conocido.
// En lectura se toleran tipos desconocidos (datos legados); en escritura se rechazan.
func IsValidMovementType(t string) bool {
	switch t {
	case MovementTypeSale, MovementTypePurchase, MovementTypeAdjustment:
		return true
	}
	return false
}

// Movement es una entrada del ledger: un evento de stock/finanzas ligado a un
// producto. Las entradas son inmutables una vez creadas; las correcciones se
// modelan como nuevos ajustes, nunca como ediciones del historial.
//
// Convención de signos: para sale/purchase Quantity es magnitud sin signo y el
// signo lo implica el tipo; para adjustment Quantity lleva signo (positivo
// aumenta stock) y Total lleva el mismo signo que Quantity.
//
// ProductName/ProductCode/ProductImage son snapshots tomados al crear el
// movimiento: si el producto se elimina después, el movimiento queda huérfano
// pero los reportes siguen agrupándolo por estos campos.
type Movement struct {
	ID           string
	OwnerID      string
	ProductID    string
	ProductName  string
	ProductCode  string
	ProductImage string
	Type         string // sale, purchase, adjustment
	Quantity     int64
	Price        decimal.Decimal // precio unitario al momento del movimiento
	Total        decimal.Decimal // |Quantity| × Price; con signo para ajustes
	Date         time.Time       // fecha de negocio (con hora)
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
