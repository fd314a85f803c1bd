package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liftory/liftory-api/internal/application/dto"
	"github.com/liftory/liftory-api/internal/application/realtime"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	domledger "github.com/liftory/liftory-api/internal/domain/ledger"
	"github.com/liftory/liftory-api/internal/domain/repository"
)

// UseCase registra y administra movimientos del ledger.
//
// El registro es transaccional: bloquea la fila del producto (SELECT FOR
// UPDATE), re-proyecta el stock con los movimientos leídos dentro de la
// transacción y recién entonces valida y escribe. Así dos ventas concurrentes
// del mismo producto no pueden pasar ambas la guarda de stock con un valor
// rancio.
type UseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
	hub          *realtime.Hub
	cache        *realtime.StockCache
}

// NewUseCase construye el caso de uso. hub y cache pueden ser nil (sin
// notificaciones ni cache, útil en tests).
func NewUseCase(txRunner TxRunner, movementRepo repository.MovementRepository, hub *realtime.Hub, cache *realtime.StockCache) *UseCase {
	return &UseCase{txRunner: txRunner, movementRepo: movementRepo, hub: hub, cache: cache}
}

// Register valida y persiste un movimiento nuevo. El producto debe existir y
// pertenecer al dueño; los snapshots (nombre, código, imagen) se toman del
// producto al momento del registro.
func (uc *UseCase) Register(ctx context.Context, ownerID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.IsValidMovementType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}

	var created *entity.Movement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ownerID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		movements, err := movementRepo.ListByProduct(ownerID, in.ProductID)
		if err != nil {
			return err
		}
		stock := domledger.CurrentStock(product, movements)
		if err := domledger.ValidateMovement(in.Type, in.Quantity, stock); err != nil {
			return err
		}

		created = &entity.Movement{
			ID:           uuid.New().String(),
			OwnerID:      ownerID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductCode:  product.Code,
			ProductImage: product.Image,
			Type:         in.Type,
			Quantity:     in.Quantity,
			Price:        in.Price,
			Total:        domledger.MovementTotal(in.Type, in.Quantity, in.Price),
			Date:         date,
			Notes:        in.Notes,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return movementRepo.Create(created)
	})
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ownerID)
	resp := toMovementResponse(created)
	return &resp, nil
}

// List devuelve todos los movimientos del dueño, los más recientes primero.
func (uc *UseCase) List(ctx context.Context, ownerID string) (*dto.MovementListResponse, error) {
	movements, err := uc.movementRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un movimiento. Es una acción explícita del usuario, nunca
// parte de la reconciliación: las correcciones normales son nuevos ajustes.
func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	movement, err := uc.movementRepo.GetByID(ownerID, id)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	if err := uc.movementRepo.Delete(ownerID, id); err != nil {
		return err
	}
	uc.afterWrite(ownerID)
	return nil
}

// DeleteAll vacía el ledger del dueño.
func (uc *UseCase) DeleteAll(ctx context.Context, ownerID string) error {
	if err := uc.movementRepo.DeleteAllByOwner(ownerID); err != nil {
		return err
	}
	uc.afterWrite(ownerID)
	return nil
}

// afterWrite invalida el cache de stock y notifica a los suscriptores con el
// snapshot completo de la colección. Si la relectura falla, los suscriptores
// simplemente no reciben esta notificación; la escritura ya quedó confirmada.
func (uc *UseCase) afterWrite(ownerID string) {
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
	if uc.hub == nil {
		return
	}
	items, err := uc.movementRepo.ListByOwner(ownerID)
	if err != nil {
		return
	}
	uc.hub.Publish(realtime.Snapshot{OwnerID: ownerID, Kind: realtime.KindMovements, Items: items})
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		ProductName:  m.ProductName,
		ProductCode:  m.ProductCode,
		ProductImage: m.ProductImage,
		Type:         m.Type,
		Quantity:     m.Quantity,
		Price:        m.Price,
		Total:        m.Total,
		Date:         m.Date,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
	}
}
