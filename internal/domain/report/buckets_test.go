package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftory/liftory-api/internal/domain/report"
)

// sábado 14 de marzo de 2026, 15:45 hora local
var bucketsNow = time.Date(2026, time.March, 14, 15, 45, 0, 0, time.UTC)

func TestBuildBuckets_Today(t *testing.T) {
	buckets := report.BuildBuckets(report.PeriodToday, bucketsNow)

	require.Len(t, buckets, 6)
	assert.Equal(t, "00:00", buckets[0].Label)
	assert.Equal(t, "20:00", buckets[5].Label)
	for _, b := range buckets {
		assert.Equal(t, 4*time.Hour, b.End.Sub(b.Start), "cada bucket mide 4 horas")
	}
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), buckets[0].Start)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), buckets[5].End)
}

func TestBuildBuckets_Week_DisjuntosYContiguos(t *testing.T) {
	buckets := report.BuildBuckets(report.PeriodWeek, bucketsNow)

	require.Len(t, buckets, 7)
	// Del más antiguo al más nuevo: domingo 8 ... sábado 14
	assert.Equal(t, "Dom", buckets[0].Label)
	assert.Equal(t, "Sáb", buckets[6].Label)
	for i := 1; i < len(buckets); i++ {
		assert.True(t, buckets[i].Start.Equal(buckets[i-1].End),
			"los buckets son contiguos, sin huecos ni solapes")
	}

	// Cada instante de la ventana cae en exactamente un bucket: muestreo cada
	// 3 horas de los 7 días.
	for ts := buckets[0].Start; !ts.After(buckets[6].End); ts = ts.Add(3 * time.Hour) {
		idx := report.Assign(ts, buckets)
		require.GreaterOrEqual(t, idx, 0, "instante sin bucket: %s", ts)
		count := 0
		for _, b := range buckets {
			if !ts.Before(b.Start) && (ts.Before(b.End) || (b == buckets[6] && ts.Equal(b.End))) {
				count++
			}
		}
		assert.Equal(t, 1, count, "instante en más de un bucket: %s", ts)
	}
}

func TestBuildBuckets_Month(t *testing.T) {
	buckets := report.BuildBuckets(report.PeriodMonth, bucketsNow)

	require.Len(t, buckets, 4)
	assert.Equal(t, "Sem 1", buckets[0].Label)
	assert.Equal(t, "Sem 4", buckets[3].Label)
	for _, b := range buckets {
		assert.Equal(t, 7*24*time.Hour, b.End.Sub(b.Start), "cada semana mide exactamente 7 días")
	}
	assert.True(t, buckets[3].End.Equal(bucketsNow), "la última semana termina en now")
}

func TestBuildBuckets_Year(t *testing.T) {
	buckets := report.BuildBuckets(report.PeriodYear, bucketsNow)

	require.Len(t, buckets, 12)
	assert.Equal(t, "Abr", buckets[0].Label, "empieza 11 meses atrás (abril 2025)")
	assert.Equal(t, "Mar", buckets[11].Label)
	assert.Equal(t, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), buckets[0].Start)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), buckets[11].End)
}

func TestBuildCustomBuckets_TopeDeDoce(t *testing.T) {
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	buckets := report.BuildCustomBuckets(from, to)
	assert.Len(t, buckets, 12, "el bucketing custom se limita a 12 meses")
	assert.Equal(t, "Ene", buckets[0].Label)
}

func TestAssign_ConvencionSemiabierta(t *testing.T) {
	buckets := report.BuildBuckets(report.PeriodWeek, bucketsNow)

	// El inicio de un bucket pertenece a ese bucket, no al anterior.
	assert.Equal(t, 1, report.Assign(buckets[1].Start, buckets))
	// El End del último bucket sí está incluido (cerrado para abarcar now).
	assert.Equal(t, 6, report.Assign(buckets[6].End, buckets))
	// Fuera de la ventana: -1.
	assert.Equal(t, -1, report.Assign(buckets[0].Start.Add(-time.Second), buckets))
	assert.Equal(t, -1, report.Assign(buckets[6].End.Add(time.Second), buckets))
}

func TestSeries_LasBarrasSumanElTotal(t *testing.T) {
	buckets := report.BuildBuckets(report.PeriodWeek, bucketsNow)
	txs := []report.Transaction{
		{Date: buckets[0].Start.Add(2 * time.Hour), Amount: decimal.NewFromInt(10)},
		{Date: buckets[0].Start.Add(5 * time.Hour), Amount: decimal.NewFromInt(5)},
		{Date: buckets[3].Start, Amount: decimal.NewFromInt(7)},
		{Date: buckets[6].End, Amount: decimal.NewFromInt(8)},
		{Date: buckets[0].Start.AddDate(0, -1, 0), Amount: decimal.NewFromInt(999)}, // fuera
	}

	series := report.Series(buckets, txs)

	require.Len(t, series, len(buckets))
	assert.True(t, series[0].Equal(decimal.NewFromInt(15)))
	assert.True(t, series[3].Equal(decimal.NewFromInt(7)))
	assert.True(t, series[6].Equal(decimal.NewFromInt(8)))

	total := decimal.Zero
	for _, v := range series {
		total = total.Add(v)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(30)),
		"las barras del gráfico suman lo incluido en la ventana, sin dobles conteos")
}

func TestParsePeriod_FallbackMes(t *testing.T) {
	assert.Equal(t, report.PeriodMonth, report.ParsePeriod("cualquiercosa"))
	assert.Equal(t, report.PeriodWeek, report.ParsePeriod("week"))
}
