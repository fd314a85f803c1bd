// Package report contiene los casos de uso de reportes y gráficos sobre el
// ledger y los gastos.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/liftory/liftory-api/internal/application/dto"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	domreport "github.com/liftory/liftory-api/internal/domain/report"
	"github.com/liftory/liftory-api/internal/domain/repository"
)

// Tipos de serie para los gráficos.
const (
	ChartKindSale     = "sale"
	ChartKindPurchase = "purchase"
	ChartKindExpense  = "expense"
	ChartKindAll      = "all"
)

// UseCase deriva reportes bajo demanda: cada invocación relee el conjunto
// completo de movimientos/gastos (sin estado derivado persistido).
//
// Si alguna lectura del almacén falla, el error se propaga envuelto en
// domain.ErrStoreUnavailable: nunca se responde un agregado en cero como si
// fuera información real.
type UseCase struct {
	movementRepo repository.MovementRepository
	expenseRepo  repository.ExpenseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movementRepo repository.MovementRepository, expenseRepo repository.ExpenseRepository) *UseCase {
	return &UseCase{movementRepo: movementRepo, expenseRepo: expenseRepo}
}

// Summary agrega la ventana del período pedido. Las dos lecturas van en
// paralelo; la ventana usa el rango de reporte de día completo.
func (uc *UseCase) Summary(ctx context.Context, ownerID string, period domreport.Period, customFrom, customTo *time.Time) (*dto.SummaryResponse, error) {
	now := time.Now()
	start, end := domreport.Range(period, now, customFrom, customTo)

	movements, expenses, err := uc.readAll(ownerID)
	if err != nil {
		return nil, err
	}

	summary := domreport.Aggregate(movements, expenses, domreport.Window{Start: start, End: end})

	perCategory := make([]dto.CategoryTotalDTO, 0, len(summary.PerCategory))
	for _, c := range summary.PerCategory {
		perCategory = append(perCategory, dto.CategoryTotalDTO{Category: c.Category, Amount: c.Amount})
	}
	return &dto.SummaryResponse{
		Income:           summary.Income,
		PurchaseCost:     summary.PurchaseCost,
		OperatingExpense: summary.OperatingExpense,
		TotalCost:        summary.TotalCost,
		NetProfit:        summary.NetProfit,
		MarginPercent:    summary.MarginPercent,
		PerCategory:      perCategory,
		Start:            start,
		End:              end,
	}, nil
}

// Chart arma la serie de barras del período para el tipo pedido (ventas,
// compras, gastos o todos los movimientos).
func (uc *UseCase) Chart(ctx context.Context, ownerID string, period domreport.Period, kind string, customFrom, customTo *time.Time) (*dto.ChartResponse, error) {
	now := time.Now()
	var buckets []domreport.Bucket
	if period == domreport.PeriodCustom {
		start, end := domreport.Range(period, now, customFrom, customTo)
		buckets = domreport.BuildCustomBuckets(start, end)
	} else {
		buckets = domreport.BuildBuckets(period, now)
	}

	movements, expenses, err := uc.readAll(ownerID)
	if err != nil {
		return nil, err
	}

	var txs []domreport.Transaction
	switch kind {
	case ChartKindExpense:
		for _, e := range expenses {
			txs = append(txs, domreport.Transaction{Date: e.Date, Amount: e.Amount})
		}
	case ChartKindSale, ChartKindPurchase:
		for _, m := range movements {
			if m.Type == kind {
				txs = append(txs, domreport.Transaction{Date: m.Date, Amount: m.Total})
			}
		}
	case ChartKindAll, "":
		kind = ChartKindAll
		for _, m := range movements {
			txs = append(txs, domreport.Transaction{Date: m.Date, Amount: m.Total})
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	series := domreport.Series(buckets, txs)
	out := make([]dto.ChartBucketDTO, len(buckets))
	for i, b := range buckets {
		out[i] = dto.ChartBucketDTO{Label: b.Label, Start: b.Start, End: b.End, Value: series[i]}
	}
	return &dto.ChartResponse{Period: string(period), Kind: kind, Buckets: out}, nil
}

// TopProducts rankea los productos más vendidos dentro del rango del período.
func (uc *UseCase) TopProducts(ctx context.Context, ownerID string, period domreport.Period, customFrom, customTo *time.Time, limit int) ([]dto.TopProductDTO, error) {
	start, end := domreport.Range(period, time.Now(), customFrom, customTo)

	movements, err := uc.movementRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, storeErr("listar movimientos", err)
	}
	inRange := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if domreport.InRange(m.Date, start, end) {
			inRange = append(inRange, m)
		}
	}

	ranked := domreport.TopProducts(inRange, limit)
	out := make([]dto.TopProductDTO, len(ranked))
	for i, p := range ranked {
		out[i] = dto.TopProductDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Image:     p.Image,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue,
		}
	}
	return out, nil
}

// ReportRange expone el rango efectivo de un período (para que la UI muestre
// qué fechas cubre el reporte).
func (uc *UseCase) ReportRange(period domreport.Period, customFrom, customTo *time.Time) dto.RangeResponse {
	start, end := domreport.Range(period, time.Now(), customFrom, customTo)
	return dto.RangeResponse{Start: start, End: end}
}

// Report devuelve el detalle del período: los movimientos y gastos cuya fecha
// cae dentro del rango (intervalo cerrado, granularidad de día completo). Es
// la contraparte "qué registros entran" del bucketing de gráficos.
func (uc *UseCase) Report(ctx context.Context, ownerID string, period domreport.Period, customFrom, customTo *time.Time) (*dto.ReportResponse, error) {
	start, end := domreport.Range(period, time.Now(), customFrom, customTo)

	movements, expenses, err := uc.readAll(ownerID)
	if err != nil {
		return nil, err
	}

	out := &dto.ReportResponse{
		Start:     start,
		End:       end,
		Movements: make([]dto.MovementResponse, 0, len(movements)),
		Expenses:  make([]dto.ExpenseResponse, 0, len(expenses)),
	}
	for _, m := range movements {
		if !domreport.InRange(m.Date, start, end) {
			continue
		}
		out.Movements = append(out.Movements, dto.MovementResponse{
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
		})
	}
	for _, e := range expenses {
		if !domreport.InRange(e.Date, start, end) {
			continue
		}
		out.Expenses = append(out.Expenses, dto.ExpenseResponse{
			ID:          e.ID,
			Category:    e.Category,
			Date:        e.Date,
			Amount:      e.Amount,
			Recurring:   e.Recurring,
			Description: e.Description,
			Notes:       e.Notes,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return out, nil
}

// readAll lee movimientos y gastos en paralelo.
func (uc *UseCase) readAll(ownerID string) ([]*entity.Movement, []*entity.Expense, error) {
	type movResult struct {
		items []*entity.Movement
		err   error
	}
	type expResult struct {
		items []*entity.Expense
		err   error
	}
	movCh := make(chan movResult, 1)
	expCh := make(chan expResult, 1)

	go func() {
		items, err := uc.movementRepo.ListByOwner(ownerID)
		movCh <- movResult{items, err}
	}()
	go func() {
		items, err := uc.expenseRepo.ListByOwner(ownerID)
		expCh <- expResult{items, err}
	}()

	mov := <-movCh
	exp := <-expCh
	if mov.err != nil {
		return nil, nil, storeErr("listar movimientos", mov.err)
	}
	if exp.err != nil {
		return nil, nil, storeErr("listar gastos", exp.err)
	}
	return mov.items, exp.items, nil
}

// storeErr marca una falla de lectura como ErrStoreUnavailable sin perder la
// causa original en la cadena.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
