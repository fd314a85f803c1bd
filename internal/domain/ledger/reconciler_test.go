package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftory/liftory-api/internal/domain/entity"
	"github.com/liftory/liftory-api/internal/domain/ledger"
)

var reconcileNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func TestReconcile_NoOpCuandoElStockCoincide(t *testing.T) {
	p := producto(10)
	movs := []*entity.Movement{mov("prod-1", entity.MovementTypeSale, 3, 3.5)}

	adj := ledger.Reconcile(p, 7, movs, reconcileNow)
	assert.Nil(t, adj, "si el stock pedido es igual al proyectado no se crea movimiento")
}

func TestReconcile_AjusteNegativoValoradoAlCosto(t *testing.T) {
	// initialStock 5, purchasePrice 2.00, sin movimientos; el usuario edita el
	// stock mostrado a 2 → ajuste {quantity: -3, price: 2.00, total: -6.00}.
	p := producto(5)

	adj := ledger.Reconcile(p, 2, nil, reconcileNow)
	require.NotNil(t, adj)

	assert.Equal(t, entity.MovementTypeAdjustment, adj.Type)
	assert.Equal(t, int64(-3), adj.Quantity)
	assert.True(t, adj.Price.Equal(decimal.NewFromFloat(2.00)),
		"los ajustes se valoran al precio de compra (costo), no al de venta")
	assert.True(t, adj.Total.Equal(decimal.NewFromFloat(-6.00)))
	assert.Equal(t, ledger.AdjustmentNotes, adj.Notes)
	assert.Equal(t, p.ID, adj.ProductID)
	assert.Equal(t, p.Name, adj.ProductName)
	assert.Equal(t, reconcileNow, adj.Date)

	// Con el ajuste aplicado, la proyección da exactamente el stock pedido.
	assert.Equal(t, int64(2), ledger.CurrentStock(p, []*entity.Movement{adj}))
}

func TestReconcile_ElDeltaCancelaSiempre(t *testing.T) {
	p := producto(12)
	movs := []*entity.Movement{
		mov("prod-1", entity.MovementTypePurchase, 4, 2),
		mov("prod-1", entity.MovementTypeSale, 6, 3.5),
		mov("prod-1", entity.MovementTypeAdjustment, -1, 2),
	}

	for _, target := range []int64{0, 1, 9, 25, 100} {
		adj := ledger.Reconcile(p, target, movs, reconcileNow)
		withAdj := movs
		if adj != nil {
			withAdj = append(append([]*entity.Movement{}, movs...), adj)
		}
		assert.Equal(t, target, ledger.CurrentStock(p, withAdj),
			"tras reconciliar, la proyección debe dar el stock pedido")
	}
}

func TestReconcile_NoTocaElProducto(t *testing.T) {
	p := producto(5)
	original := *p

	_ = ledger.Reconcile(p, 20, nil, reconcileNow)

	assert.Equal(t, original.InitialStock, p.InitialStock,
		"InitialStock es inmutable: la corrección vive solo en el ledger")
	assert.Equal(t, original, *p)
}
