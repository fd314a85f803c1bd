package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftory/liftory-api/internal/application/report"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	domreport "github.com/liftory/liftory-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	items   []*entity.Movement
	listErr error
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error { return nil }
func (r *fakeMovementRepo) GetByID(ownerID, id string) (*entity.Movement, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListByOwner(ownerID string) ([]*entity.Movement, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}
func (r *fakeMovementRepo) ListByProduct(ownerID, productID string) ([]*entity.Movement, error) {
	return r.ListByOwner(ownerID)
}
func (r *fakeMovementRepo) Delete(ownerID, id string) error    { return nil }
func (r *fakeMovementRepo) DeleteAllByOwner(ownerID string) error { return nil }

type fakeExpenseRepo struct {
	items   []*entity.Expense
	listErr error
}

func (r *fakeExpenseRepo) Create(e *entity.Expense) error { return nil }
func (r *fakeExpenseRepo) GetByID(ownerID, id string) (*entity.Expense, error) {
	return nil, nil
}
func (r *fakeExpenseRepo) ListByOwner(ownerID string) ([]*entity.Expense, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.items, nil
}
func (r *fakeExpenseRepo) Update(e *entity.Expense) error      { return nil }
func (r *fakeExpenseRepo) Delete(ownerID, id string) error     { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const ownerA = "owner-a"

func mov(tipo string, total string, daysAgo int) *entity.Movement {
	t := decimal.RequireFromString(total)
	return &entity.Movement{
		ID:        tipo + total,
		OwnerID:   ownerA,
		ProductID: "p1",
		Type:      tipo,
		Quantity:  1,
		Price:     t,
		Total:     t,
		Date:      time.Now().AddDate(0, 0, -daysAgo),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSummary_AgregaLaVentanaDelPeriodo(t *testing.T) {
	movRepo := &fakeMovementRepo{items: []*entity.Movement{
		mov(entity.MovementTypeSale, "200.00", 0),
		mov(entity.MovementTypePurchase, "80.00", 0),
		mov(entity.MovementTypeSale, "999.00", 400), // fuera de cualquier ventana de este año
	}}
	expRepo := &fakeExpenseRepo{items: []*entity.Expense{
		{ID: "e1", OwnerID: ownerA, Category: entity.ExpenseCategoryRent,
			Amount: decimal.RequireFromString("50.00"), Date: time.Now()},
	}}
	uc := report.NewUseCase(movRepo, expRepo)

	out, err := uc.Summary(context.Background(), ownerA, domreport.PeriodMonth, nil, nil)
	require.NoError(t, err)

	assert.True(t, out.Income.Equal(decimal.RequireFromString("200.00")),
		"la venta vieja no debe contar: income %s", out.Income)
	assert.True(t, out.PurchaseCost.Equal(decimal.RequireFromString("80.00")))
	assert.True(t, out.OperatingExpense.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, out.NetProfit.Equal(decimal.RequireFromString("70.00")), "200 - 80 - 50")
	require.Len(t, out.PerCategory, 1)
	assert.Equal(t, entity.ExpenseCategoryRent, out.PerCategory[0].Category)
}

// Una falla de lectura jamás puede degradarse a un resumen en cero: debe
// propagarse como ErrStoreUnavailable.
func TestSummary_FallaDeLectura_RetornaErrStoreUnavailable(t *testing.T) {
	movRepo := &fakeMovementRepo{listErr: errors.New("conexión rechazada")}
	uc := report.NewUseCase(movRepo, &fakeExpenseRepo{})

	_, err := uc.Summary(context.Background(), ownerA, domreport.PeriodMonth, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "conexión rechazada", "la causa original no debe perderse")
}

func TestChart_FormaDeLaSeriePorPeriodo(t *testing.T) {
	uc := report.NewUseCase(&fakeMovementRepo{}, &fakeExpenseRepo{})
	ctx := context.Background()

	cases := []struct {
		period  domreport.Period
		buckets int
	}{
		{domreport.PeriodToday, 6},
		{domreport.PeriodWeek, 7},
		{domreport.PeriodMonth, 4},
		{domreport.PeriodYear, 12},
	}
	for _, tc := range cases {
		out, err := uc.Chart(ctx, ownerA, tc.period, report.ChartKindSale, nil, nil)
		require.NoError(t, err, "period %s", tc.period)
		assert.Len(t, out.Buckets, tc.buckets, "period %s", tc.period)
		assert.Equal(t, string(tc.period), out.Period)
	}
}

func TestChart_KindFiltraLaSerie(t *testing.T) {
	movRepo := &fakeMovementRepo{items: []*entity.Movement{
		mov(entity.MovementTypeSale, "100.00", 0),
		mov(entity.MovementTypePurchase, "40.00", 0),
	}}
	expRepo := &fakeExpenseRepo{items: []*entity.Expense{
		{ID: "e1", OwnerID: ownerA, Amount: decimal.RequireFromString("25.00"), Date: time.Now()},
	}}
	uc := report.NewUseCase(movRepo, expRepo)
	ctx := context.Background()

	sum := func(kind string) decimal.Decimal {
		out, err := uc.Chart(ctx, ownerA, domreport.PeriodWeek, kind, nil, nil)
		require.NoError(t, err)
		total := decimal.Zero
		for _, b := range out.Buckets {
			total = total.Add(b.Value)
		}
		return total
	}

	assert.True(t, sum(report.ChartKindSale).Equal(decimal.RequireFromString("100.00")))
	assert.True(t, sum(report.ChartKindPurchase).Equal(decimal.RequireFromString("40.00")))
	assert.True(t, sum(report.ChartKindExpense).Equal(decimal.RequireFromString("25.00")))
	assert.True(t, sum(report.ChartKindAll).Equal(decimal.RequireFromString("140.00")),
		"all suma movimientos (ventas y compras), no gastos")
}

func TestChart_PeriodoCustom_UsaBucketsMensuales(t *testing.T) {
	uc := report.NewUseCase(&fakeMovementRepo{}, &fakeExpenseRepo{})

	from := time.Now().AddDate(0, -2, 0)
	to := time.Now()
	out, err := uc.Chart(context.Background(), ownerA, domreport.PeriodCustom, report.ChartKindSale, &from, &to)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(out.Buckets), 2)
	assert.LessOrEqual(t, len(out.Buckets), 12, "los buckets custom se limitan a 12")
}

func TestTopProducts_RankeaVentasDelRango(t *testing.T) {
	whey := mov(entity.MovementTypeSale, "300.00", 0)
	whey.ProductName = "Proteína Whey"
	crea := mov(entity.MovementTypeSale, "120.00", 0)
	crea.ID = "crea"
	crea.ProductName = "Creatina"
	old := mov(entity.MovementTypeSale, "900.00", 400)
	old.ID = "old"
	old.ProductName = "Pre-entreno"

	uc := report.NewUseCase(&fakeMovementRepo{items: []*entity.Movement{crea, whey, old}}, &fakeExpenseRepo{})

	out, err := uc.TopProducts(context.Background(), ownerA, domreport.PeriodMonth, nil, nil, 5)
	require.NoError(t, err)
	require.Len(t, out, 2, "la venta fuera de rango no entra al ranking")
	assert.Equal(t, "Proteína Whey", out[0].Name, "ordenado por revenue descendente")
	assert.Equal(t, "Creatina", out[1].Name)
}

func TestReport_FiltraPorRangoCerrado(t *testing.T) {
	movRepo := &fakeMovementRepo{items: []*entity.Movement{
		mov(entity.MovementTypeSale, "100.00", 0),
		mov(entity.MovementTypeSale, "999.00", 400),
	}}
	expRepo := &fakeExpenseRepo{items: []*entity.Expense{
		{ID: "e1", OwnerID: ownerA, Amount: decimal.RequireFromString("25.00"), Date: time.Now()},
		{ID: "e2", OwnerID: ownerA, Amount: decimal.RequireFromString("99.00"), Date: time.Now().AddDate(0, 0, -400)},
	}}
	uc := report.NewUseCase(movRepo, expRepo)

	out, err := uc.Report(context.Background(), ownerA, domreport.PeriodYear, nil, nil)
	require.NoError(t, err)
	assert.Len(t, out.Movements, 1, "la venta del año pasado no entra")
	assert.Len(t, out.Expenses, 1)
	assert.Equal(t, "e1", out.Expenses[0].ID)
}

func TestReportRange_CustomNormalizaDias(t *testing.T) {
	uc := report.NewUseCase(&fakeMovementRepo{}, &fakeExpenseRepo{})

	from := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)
	to := time.Date(2026, 2, 20, 9, 15, 0, 0, time.UTC)
	out := uc.ReportRange(domreport.PeriodCustom, &from, &to)

	assert.Equal(t, 0, out.Start.Hour(), "el inicio se normaliza a las 00:00")
	assert.Equal(t, 23, out.End.Hour(), "el fin se normaliza a las 23:59:59")
	assert.Equal(t, 59, out.End.Minute())
}
