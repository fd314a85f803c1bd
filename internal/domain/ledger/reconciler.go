package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liftory/liftory-api/internal/domain/entity"
)

// AdjustmentNotes es la nota fija de los ajustes sintéticos que genera la
// reconciliación de una edición de stock.
const AdjustmentNotes = "automatic adjustment from stock edit"

// Reconcile traduce una edición de "stock actual" hecha por el usuario en un
// movimiento de ajuste sintético, sin tocar jamás InitialStock ni el historial.
//
// Calcula delta = requestedStock - CurrentStock(product, movements). Si el
// delta es 0 no hay nada que corregir y devuelve nil. Si no, devuelve un ajuste
// valorado al precio de compra (costo, no precio de venta) cuyo total lleva el
// signo del delta. Por construcción, proyectar el ledger con el ajuste incluido
// da exactamente requestedStock.
//
// Reconcile no persiste nada: el caller debe escribir el ajuste y la
// actualización del producto dentro de una misma transacción (ver
// catalog.UseCase.Update) para que el ledger y el producto no puedan divergir.
func Reconcile(product *entity.Product, requestedStock int64, movements []*entity.Movement, now time.Time) *entity.Movement {
	before := CurrentStock(product, movements)
	delta := requestedStock - before
	if delta == 0 {
		return nil
	}
	price := product.PurchasePrice
	return &entity.Movement{
		ID:           uuid.New().String(),
		OwnerID:      product.OwnerID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductCode:  product.Code,
		ProductImage: product.Image,
		Type:         entity.MovementTypeAdjustment,
		Quantity:     delta,
		Price:        price,
		Total:        price.Mul(decimal.NewFromInt(delta)),
		Date:         now,
		Notes:        AdjustmentNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
