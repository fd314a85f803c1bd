package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotalDTO acumulado de gastos de una categoría.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SummaryResponse resumen financiero de la ventana pedida.
type SummaryResponse struct {
	Income           decimal.Decimal    `json:"income"`
	PurchaseCost     decimal.Decimal    `json:"purchase_cost"`
	OperatingExpense decimal.Decimal    `json:"operating_expense"`
	TotalCost        decimal.Decimal    `json:"total_cost"`
	NetProfit        decimal.Decimal    `json:"net_profit"`
	MarginPercent    decimal.Decimal    `json:"margin_percent"`
	PerCategory      []CategoryTotalDTO `json:"per_category"`
	Start            time.Time          `json:"start"`
	End              time.Time          `json:"end"`
}

// ChartBucketDTO una barra del gráfico.
type ChartBucketDTO struct {
	Label string          `json:"label"`
	Start time.Time       `json:"start"`
	End   time.Time       `json:"end"`
	Value decimal.Decimal `json:"value"`
}

// ChartResponse serie de barras de un período.
type ChartResponse struct {
	Period  string           `json:"period"`
	Kind    string           `json:"kind"` // sale | purchase | expense | all
	Buckets []ChartBucketDTO `json:"buckets"`
}

// TopProductDTO entrada del ranking de más vendidos.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// RangeResponse rango de fechas efectivo de un reporte.
type RangeResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReportResponse detalle del período: los movimientos y gastos incluidos en el
// rango (intervalo cerrado de día completo), listos para la vista de reporte.
type ReportResponse struct {
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Movements []MovementResponse `json:"movements"`
	Expenses  []ExpenseResponse  `json:"expenses"`
}
