package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
)

// ValidateMovement aplica las reglas de política que protegen el invariante
// del ledger (el stock no debe volverse negativo por el flujo normal):
//
//   - sale/purchase: cantidad estrictamente positiva
//   - adjustment: cantidad distinta de 0
//   - sale: la cantidad no puede exceder el stock proyectado actual
//   - adjustment negativo: no puede reducir más stock del disponible
//
// currentStock es el stock proyectado del producto al momento de validar
// (ver CurrentStock). El tipo debe pertenecer al conjunto conocido.
func ValidateMovement(movementType string, quantity, currentStock int64) error {
	if !entity.IsValidMovementType(movementType) {
		return domain.ErrInvalidInput
	}
	if movementType == entity.MovementTypeAdjustment {
		if quantity == 0 {
			return domain.ErrZeroAdjustment
		}
		if quantity < 0 && -quantity > currentStock {
			return domain.ErrInsufficientStock
		}
		return nil
	}
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if movementType == entity.MovementTypeSale && quantity > currentStock {
		return domain.ErrInsufficientStock
	}
	return nil
}

// MovementTotal calcula el total según la convención de signos: para ventas y
// compras el total es siempre positivo (|cantidad| × precio); para ajustes el
// total lleva el mismo signo que la cantidad.
func MovementTotal(movementType string, quantity int64, price decimal.Decimal) decimal.Decimal {
	if movementType == entity.MovementTypeAdjustment {
		return price.Mul(decimal.NewFromInt(quantity))
	}
	return price.Mul(decimal.NewFromInt(abs(quantity)))
}
