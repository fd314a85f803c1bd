// Package catalog contiene los casos de uso CRUD del catálogo de productos.
// El stock nunca se escribe aquí: las ediciones de stock del usuario pasan por
// la reconciliación y terminan como ajustes en el ledger.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liftory/liftory-api/internal/application/dto"
	appledger "github.com/liftory/liftory-api/internal/application/ledger"
	"github.com/liftory/liftory-api/internal/application/realtime"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	"github.com/liftory/liftory-api/internal/domain/ledger"
	"github.com/liftory/liftory-api/internal/domain/repository"
)

// UseCase casos de uso del catálogo.
type UseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	txRunner     appledger.TxRunner
	hub          *realtime.Hub
	cache        *realtime.StockCache
}

// NewUseCase construye el caso de uso. hub y cache pueden ser nil.
func NewUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	txRunner appledger.TxRunner,
	hub *realtime.Hub,
	cache *realtime.StockCache,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		txRunner:     txRunner,
		hub:          hub,
		cache:        cache,
	}
}

// Create crea un producto. El código debe ser único por dueño; los precios no
// pueden ser negativos. InitialStock queda fijado para siempre en este punto.
func (uc *UseCase) Create(ctx context.Context, ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByCode(ownerID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	initialStock := in.InitialStock
	if initialStock < 0 {
		initialStock = 0
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Name:          in.Name,
		Code:          in.Code,
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		InitialStock:  initialStock,
		MinStock:      in.MinStock,
		Image:         in.Image,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	uc.afterWrite(ownerID, false)
	resp := toProductResponse(product, initialStock)
	return &resp, nil
}

// List devuelve el catálogo con el stock proyectado de cada producto. Usa el
// cache inyectado cuando tiene entradas; cualquier escritura lo invalida.
func (uc *UseCase) List(ctx context.Context, ownerID string) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	movements, err := uc.movementRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p, uc.projectedStock(p, movements)))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Get devuelve un producto con su stock proyectado.
func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product, uc.projectedStock(product, movements))
	return &resp, nil
}

// Update actualiza los campos editables del producto. Si in.Stock difiere del
// stock proyectado, genera el ajuste sintético en la misma transacción que la
// actualización del producto: si falla la escritura del ajuste, tampoco se
// actualiza el producto (rollback). InitialStock jamás se modifica.
//
// El delta se calcula contra los movimientos leídos dentro de la transacción,
// con la fila del producto bloqueada, para no reconciliar contra un "antes"
// rancio (dos reconciliaciones concurrentes quedarían serializadas).
func (uc *UseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var (
		updated    *entity.Product
		finalStock int64
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetForUpdate(ownerID, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		movements, err := movementRepo.ListByProduct(ownerID, id)
		if err != nil {
			return err
		}

		// La reconciliación usa el producto sin modificar: el ajuste se valora
		// al precio de compra vigente antes de la edición.
		var adjustment *entity.Movement
		finalStock = ledger.CurrentStock(product, movements)
		if in.Stock != nil {
			if *in.Stock < 0 {
				return domain.ErrInvalidInput
			}
			adjustment = ledger.Reconcile(product, *in.Stock, movements, time.Now())
			finalStock = *in.Stock
		}

		if in.Name != nil {
			product.Name = *in.Name
		}
		if in.Category != nil {
			product.Category = *in.Category
		}
		if in.PurchasePrice != nil {
			if in.PurchasePrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			product.PurchasePrice = *in.PurchasePrice
		}
		if in.SalePrice != nil {
			if in.SalePrice.IsNegative() {
				return domain.ErrInvalidInput
			}
			product.SalePrice = *in.SalePrice
		}
		if in.MinStock != nil {
			product.MinStock = *in.MinStock
		}
		if in.Image != nil {
			product.Image = *in.Image
		}
		product.UpdatedAt = time.Now()

		if err := productRepo.Update(product); err != nil {
			return err
		}
		if adjustment != nil {
			if err := movementRepo.Create(adjustment); err != nil {
				return err
			}
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ownerID, true)
	resp := toProductResponse(updated, finalStock)
	return &resp, nil
}

// Delete elimina un producto. Sus movimientos permanecen en el ledger (sin
// cascada): quedan huérfanos pero siguen contando en los reportes vía los
// snapshots de nombre/código.
func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	product, err := uc.productRepo.GetByID(ownerID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(ownerID, id); err != nil {
		return err
	}
	uc.afterWrite(ownerID, false)
	return nil
}

func (uc *UseCase) projectedStock(p *entity.Product, movements []*entity.Movement) int64 {
	if uc.cache != nil {
		if stock, ok := uc.cache.Get(p.ID); ok {
			return stock
		}
	}
	stock := ledger.CurrentStock(p, movements)
	if uc.cache != nil {
		uc.cache.Set(p.ID, stock)
	}
	return stock
}

// afterWrite invalida el cache y publica los snapshots afectados.
func (uc *UseCase) afterWrite(ownerID string, movementsToo bool) {
	if uc.cache != nil {
		uc.cache.Invalidate()
	}
	if uc.hub == nil {
		return
	}
	if items, err := uc.productRepo.ListByOwner(ownerID); err == nil {
		uc.hub.Publish(realtime.Snapshot{OwnerID: ownerID, Kind: realtime.KindProducts, Items: items})
	}
	if movementsToo {
		if items, err := uc.movementRepo.ListByOwner(ownerID); err == nil {
			uc.hub.Publish(realtime.Snapshot{OwnerID: ownerID, Kind: realtime.KindMovements, Items: items})
		}
	}
}

func toProductResponse(p *entity.Product, stock int64) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		InitialStock:  p.InitialStock,
		MinStock:      p.MinStock,
		Stock:         stock,
		LowStock:      stock <= p.MinStock,
		Image:         p.Image,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
