package ledger

import (
	"context"

	"github.com/liftory/liftory-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad entre el ledger y el
// catálogo: el registro de movimientos y la reconciliación de ediciones de
// stock escriben producto y movimiento en una sola transacción, de modo que
// nunca queda un producto actualizado sin su asiento (ni al revés).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
