package repository

import "github.com/liftory/liftory-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones están escopeadas al dueño autenticado.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(ownerID, id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (repos atados vía TxRunner).
	GetForUpdate(ownerID, id string) (*entity.Product, error)
	GetByCode(ownerID, code string) (*entity.Product, error)
	// Update persiste los campos editables del producto. InitialStock nunca se
	// escribe aquí: el stock se corrige vía movimientos de ajuste.
	Update(product *entity.Product) error
	ListByOwner(ownerID string) ([]*entity.Product, error)
	Delete(ownerID, id string) error
}
