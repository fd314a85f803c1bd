package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftory/liftory-api/internal/application/dto"
	"github.com/liftory/liftory-api/internal/application/ledger"
	"github.com/liftory/liftory-api/internal/application/realtime"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	"github.com/liftory/liftory-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	products  map[string]*entity.Product
	movements []*entity.Movement
}

type fakeProductRepo struct{ s *memStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(ownerID, id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.OwnerID != ownerID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ownerID, id string) (*entity.Product, error) {
	return r.GetByID(ownerID, id)
}

func (r *fakeProductRepo) GetByCode(ownerID, code string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }

func (r *fakeProductRepo) ListByOwner(ownerID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(ownerID, id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeMovementRepo struct{ s *memStore }

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) GetByID(ownerID, id string) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.OwnerID == ownerID && m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) ListByOwner(ownerID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.OwnerID == ownerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByProduct(ownerID, productID string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.s.movements {
		if m.OwnerID == ownerID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) Delete(ownerID, id string) error {
	for i, m := range r.s.movements {
		if m.OwnerID == ownerID && m.ID == id {
			r.s.movements = append(r.s.movements[:i], r.s.movements[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeMovementRepo) DeleteAllByOwner(ownerID string) error {
	var kept []*entity.Movement
	for _, m := range r.s.movements {
		if m.OwnerID != ownerID {
			kept = append(kept, m)
		}
	}
	r.s.movements = kept
	return nil
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.MovementRepository) error) error {
	movements := append([]*entity.Movement(nil), t.s.movements...)
	if err := fn(&fakeProductRepo{s: t.s}, &fakeMovementRepo{s: t.s}); err != nil {
		t.s.movements = movements
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const ownerA = "owner-a"

func newStore(initialStock int64) *memStore {
	return &memStore{products: map[string]*entity.Product{
		"p1": {
			ID:            "p1",
			OwnerID:       ownerA,
			Name:          "Proteína Whey 1kg",
			Code:          "WHEY-1KG",
			Image:         "https://cdn.example.com/whey.png",
			PurchasePrice: decimal.RequireFromString("15.00"),
			SalePrice:     decimal.RequireFromString("30.00"),
			InitialStock:  initialStock,
		},
	}}
}

func newLedgerUC(s *memStore, hub *realtime.Hub) *ledger.UseCase {
	return ledger.NewUseCase(&fakeTxRunner{s: s}, &fakeMovementRepo{s: s}, hub, realtime.NewStockCache())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_Venta_TomaSnapshotsYTotal(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	out, err := uc.Register(context.Background(), ownerA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeSale,
		Quantity:  3,
		Price:     decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Proteína Whey 1kg", out.ProductName, "snapshot del nombre al registrar")
	assert.Equal(t, "WHEY-1KG", out.ProductCode)
	assert.Equal(t, "https://cdn.example.com/whey.png", out.ProductImage)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("90.00")), "total = 3 × 30.00")
	require.Len(t, s.movements, 1)
}

func TestRegister_VentaExcedeStock_RetornaErrInsufficientStock(t *testing.T) {
	s := newStore(2)
	uc := newLedgerUC(s, nil)

	_, err := uc.Register(context.Background(), ownerA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeSale,
		Quantity:  3,
		Price:     decimal.RequireFromString("30.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, s.movements, "el movimiento rechazado no debe persistirse")
}

// La guarda de stock debe evaluarse contra el ledger completo, no solo contra
// el stock inicial.
func TestRegister_VentaValidaContraStockProyectado(t *testing.T) {
	s := newStore(5)
	uc := newLedgerUC(s, nil)
	ctx := context.Background()

	// 5 - 4 = 1 disponible
	_, err := uc.Register(ctx, ownerA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeSale, Quantity: 4,
		Price: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, ownerA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeSale, Quantity: 2,
		Price: decimal.RequireFromString("30.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "solo queda 1 unidad")

	_, err = uc.Register(ctx, ownerA, dto.RegisterMovementRequest{
		ProductID: "p1", Type: entity.MovementTypeSale, Quantity: 1,
		Price: decimal.RequireFromString("30.00"),
	})
	require.NoError(t, err, "la última unidad sí puede venderse")
}

func TestRegister_AjusteCero_RetornaErrZeroAdjustment(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	_, err := uc.Register(context.Background(), ownerA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeAdjustment,
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domain.ErrZeroAdjustment)
}

func TestRegister_AjusteNegativo_TotalConSigno(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	out, err := uc.Register(context.Background(), ownerA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypeAdjustment,
		Quantity:  -4,
		Price:     decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("-60.00")),
		"el total del ajuste lleva el signo de la cantidad")
}

func TestRegister_TipoInvalido_RetornaErrInvalidInput(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	_, err := uc.Register(context.Background(), ownerA, dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      "venta", // tipo legado no soportado en la API
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_ProductoInexistente_RetornaErrNotFound(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	_, err := uc.Register(context.Background(), ownerA, dto.RegisterMovementRequest{
		ProductID: "nope",
		Type:      entity.MovementTypePurchase,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_ProductoDeOtroDueno_RetornaErrNotFound(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	_, err := uc.Register(context.Background(), "owner-b", dto.RegisterMovementRequest{
		ProductID: "p1",
		Type:      entity.MovementTypePurchase,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "las colecciones son por dueño")
}

// Tras cada escritura los suscriptores reciben el snapshot completo de la
// colección, nunca un diff.
func TestRegister_PublicaSnapshotCompleto(t *testing.T) {
	s := newStore(10)
	hub := realtime.NewHub()
	uc := newLedgerUC(s, hub)

	var received []realtime.Snapshot
	unsub := hub.Subscribe(ownerA, realtime.KindMovements, func(snap realtime.Snapshot) {
		received = append(received, snap)
	})
	defer unsub()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.Register(ctx, ownerA, dto.RegisterMovementRequest{
			ProductID: "p1", Type: entity.MovementTypePurchase, Quantity: 1,
			Price: decimal.RequireFromString("15.00"),
		})
		require.NoError(t, err)
	}

	require.Len(t, received, 3, "una notificación por escritura")
	last, ok := received[2].Items.([]*entity.Movement)
	require.True(t, ok)
	assert.Len(t, last, 3, "el último snapshot trae la colección completa")
}

func TestDelete_MovimientoInexistente_RetornaErrNotFound(t *testing.T) {
	s := newStore(10)
	uc := newLedgerUC(s, nil)

	err := uc.Delete(context.Background(), ownerA, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAll_VaciaSoloElLedgerDelDueno(t *testing.T) {
	s := newStore(10)
	s.movements = append(s.movements,
		&entity.Movement{ID: "m1", OwnerID: ownerA, ProductID: "p1", Type: entity.MovementTypePurchase, Quantity: 1},
		&entity.Movement{ID: "m2", OwnerID: "owner-b", ProductID: "px", Type: entity.MovementTypePurchase, Quantity: 1},
	)
	uc := newLedgerUC(s, nil)

	require.NoError(t, uc.DeleteAll(context.Background(), ownerA))
	require.Len(t, s.movements, 1)
	assert.Equal(t, "owner-b", s.movements[0].OwnerID, "el ledger de otros dueños no se toca")
}
