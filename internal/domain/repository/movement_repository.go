package repository

import "github.com/liftory/liftory-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el ledger de
// movimientos. El ledger es append-only: no existe Update; Delete existe solo
// como acción explícita del usuario, nunca como parte de la reconciliación.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(ownerID, id string) (*entity.Movement, error)
	ListByOwner(ownerID string) ([]*entity.Movement, error)
	ListByProduct(ownerID, productID string) ([]*entity.Movement, error)
	Delete(ownerID, id string) error
	DeleteAllByOwner(ownerID string) error
}
