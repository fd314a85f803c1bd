// Package report contiene la agregación financiera pura y el bucketing de
// ventanas de tiempo para reportes y gráficos. Igual que ledger, ninguna
// función hace I/O: las fallas de lectura del almacén son responsabilidad de
// la capa de aplicación y nunca se disfrazan aquí de agregados en cero.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liftory/liftory-api/internal/domain/entity"
)

// Window es la ventana de fechas sobre la que se agrega, con ambos extremos
// incluidos (misma convención que InRange, ver range.go).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reporta si una fecha cae dentro de la ventana (intervalo cerrado).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// CategoryTotal es el acumulado de gastos de una categoría.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// Summary es el resumen financiero de una ventana.
type Summary struct {
	Income           decimal.Decimal // ventas
	PurchaseCost     decimal.Decimal // compras
	OperatingExpense decimal.Decimal // gastos operativos
	TotalCost        decimal.Decimal // PurchaseCost + OperatingExpense
	NetProfit        decimal.Decimal // Income - TotalCost
	MarginPercent    decimal.Decimal // NetProfit/Income × 100, 0 si Income == 0
	PerCategory      []CategoryTotal // gastos por categoría, descendente
}

// Aggregate pliega movimientos y gastos dentro de la ventana en un Summary.
//
// Income suma totales de ventas, PurchaseCost totales de compras y
// OperatingExpense montos de gastos; los ajustes no entran en ningún rubro.
// MarginPercent tiene guarda explícita de división por cero: con ingresos en
// cero el margen es 0, nunca NaN/Inf. Las categorías ausentes o no reconocidas
// se acumulan en "other" y el ranking sale ordenado por monto descendente
// (empates por nombre de categoría, para un orden estable).
func Aggregate(movements []*entity.Movement, expenses []*entity.Expense, w Window) Summary {
	income := decimal.Zero
	purchaseCost := decimal.Zero
	for _, m := range movements {
		if !w.Contains(m.Date) {
			continue
		}
		switch m.Type {
		case entity.MovementTypeSale:
			income = income.Add(m.Total)
		case entity.MovementTypePurchase:
			purchaseCost = purchaseCost.Add(m.Total)
		}
	}

	operating := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		if !w.Contains(e.Date) {
			continue
		}
		operating = operating.Add(e.Amount)
		cat := entity.NormalizeExpenseCategory(e.Category)
		byCategory[cat] = byCategory[cat].Add(e.Amount)
	}

	totalCost := purchaseCost.Add(operating)
	netProfit := income.Sub(totalCost)
	margin := decimal.Zero
	if income.GreaterThan(decimal.Zero) {
		margin = netProfit.Div(income).Mul(decimal.NewFromInt(100))
	}

	perCategory := make([]CategoryTotal, 0, len(byCategory))
	for cat, amount := range byCategory {
		perCategory = append(perCategory, CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(perCategory, func(i, j int) bool {
		if !perCategory[i].Amount.Equal(perCategory[j].Amount) {
			return perCategory[i].Amount.GreaterThan(perCategory[j].Amount)
		}
		return perCategory[i].Category < perCategory[j].Category
	})

	return Summary{
		Income:           income,
		PurchaseCost:     purchaseCost,
		OperatingExpense: operating,
		TotalCost:        totalCost,
		NetProfit:        netProfit,
		MarginPercent:    margin,
		PerCategory:      perCategory,
	}
}
