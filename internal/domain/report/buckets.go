package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period es el período de reporte seleccionado por el usuario.
type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodCustom  Period = "custom"
)

// ParsePeriod normaliza el período; valores desconocidos caen en month, el
// default histórico de la vista de reportes.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodCustom:
		return Period(s)
	}
	return PeriodMonth
}

// Bucket es un subintervalo contiguo de la ventana de reporte, usado para
// agrupar transacciones en barras de gráfico. El intervalo es semiabierto
// [Start, End) salvo el último bucket de la lista, que se cierra en End para
// incluir el instante actual. Assign aplica esa misma convención.
type Bucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// Etiquetas de días y meses (es-PE, igual que la UI original).
var (
	dayShortNames   = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}
	monthShortNames = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
)

const maxCustomBuckets = 12

// BuildBuckets mapea un período a su lista de buckets, ordenados
// cronológicamente ascendente:
//
//	today   → 6 buckets de 4 horas sobre el día de now
//	week    → 7 buckets diarios (últimos 7 días, del más antiguo al más nuevo)
//	month   → 4 buckets semanales de exactamente 7 días terminando en now
//	year    → 12 meses calendario (el mes de now es el último)
//	quarter/custom → meses calendario del rango, tope de 12 (usar
//	                 BuildCustomBuckets para un rango explícito)
func BuildBuckets(period Period, now time.Time) []Bucket {
	switch period {
	case PeriodToday:
		day := startOfDay(now)
		buckets := make([]Bucket, 0, 6)
		for h := 0; h < 24; h += 4 {
			start := day.Add(time.Duration(h) * time.Hour)
			buckets = append(buckets, Bucket{
				Label: start.Format("15:00"),
				Start: start,
				End:   start.Add(4 * time.Hour),
			})
		}
		return buckets

	case PeriodWeek:
		buckets := make([]Bucket, 0, 7)
		for i := 6; i >= 0; i-- {
			day := startOfDay(now.AddDate(0, 0, -i))
			buckets = append(buckets, Bucket{
				Label: dayShortNames[int(day.Weekday())],
				Start: day,
				End:   day.AddDate(0, 0, 1),
			})
		}
		return buckets

	case PeriodMonth:
		buckets := make([]Bucket, 0, 4)
		for i := 3; i >= 0; i-- {
			end := now.AddDate(0, 0, -i*7)
			buckets = append(buckets, Bucket{
				Label: weekLabel(4 - i),
				Start: end.AddDate(0, 0, -7),
				End:   end,
			})
		}
		return buckets

	case PeriodYear:
		buckets := make([]Bucket, 0, 12)
		for i := 11; i >= 0; i-- {
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
			buckets = append(buckets, Bucket{
				Label: monthShortNames[start.Month()-1],
				Start: start,
				End:   start.AddDate(0, 1, 0),
			})
		}
		return buckets

	default: // quarter y custom sin rango explícito: meses del rango de reporte
		start, end := Range(period, now, nil, nil)
		return BuildCustomBuckets(start, end)
	}
}

// BuildCustomBuckets genera buckets de meses calendario que cubren [from, to],
// con tope de 12 buckets. El primero y el último se recortan al rango pedido
// para que los buckets sigan cubriendo exactamente la ventana.
func BuildCustomBuckets(from, to time.Time) []Bucket {
	if to.Before(from) {
		from, to = to, from
	}
	buckets := make([]Bucket, 0, maxCustomBuckets)
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, from.Location())
	for len(buckets) < maxCustomBuckets && cursor.Before(to) {
		start := cursor
		end := cursor.AddDate(0, 1, 0)
		if start.Before(from) {
			start = from
		}
		if end.After(to) {
			end = to
		}
		buckets = append(buckets, Bucket{
			Label: monthShortNames[cursor.Month()-1],
			Start: start,
			End:   end,
		})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return buckets
}

// Assign devuelve el índice del bucket al que pertenece la fecha, o -1 si cae
// fuera de todos. Cada instante dentro de la ventana cae en exactamente un
// bucket: intervalos [Start, End) salvo el último, cerrado en End.
func Assign(date time.Time, buckets []Bucket) int {
	for i, b := range buckets {
		if date.Before(b.Start) {
			continue
		}
		if date.Before(b.End) {
			return i
		}
		if i == len(buckets)-1 && date.Equal(b.End) {
			return i
		}
	}
	return -1
}

// Transaction es el par fecha/monto que consume la serie de un gráfico.
type Transaction struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Series suma los montos de cada transacción en su bucket asignado y devuelve
// una serie del mismo largo que buckets. Como Assign y Aggregate comparten la
// asignación de ventana, las barras de un gráfico suman lo mismo que el total
// agregado del período.
func Series(buckets []Bucket, txs []Transaction) []decimal.Decimal {
	series := make([]decimal.Decimal, len(buckets))
	for i := range series {
		series[i] = decimal.Zero
	}
	for _, tx := range txs {
		if i := Assign(tx.Date, buckets); i >= 0 {
			series[i] = series[i].Add(tx.Amount)
		}
	}
	return series
}

func weekLabel(n int) string {
	return fmt.Sprintf("Sem %d", n)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
