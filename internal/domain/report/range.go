package report

import "time"

// Range calcula el rango de fechas de un reporte con granularidad de día
// completo: Start a las 00:00:00 del día inicial del período y End a las
// 23:59:59 del día de now (o del "hasta" custom). Esta es una operación
// distinta del bucketing de gráficos: Range decide qué registros entran al
// reporte (intervalo cerrado, ver InRange); BuildBuckets decide cómo se
// agrupan en barras (intervalos semiabiertos). No asumir que comparten
// convención de comparación.
//
// customFrom/customTo solo aplican con PeriodCustom; con nil se usa el inicio
// del mes en curso y el día de now, los defaults históricos.
func Range(period Period, now time.Time, customFrom, customTo *time.Time) (start, end time.Time) {
	loc := now.Location()
	end = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, loc)

	switch period {
	case PeriodToday:
		start = startOfDay(now)
	case PeriodWeek:
		// Semana que inicia en lunes (lunes 00:00 de la semana en curso).
		offset := int(now.Weekday()) - 1
		if now.Weekday() == time.Sunday {
			offset = 6
		}
		start = startOfDay(now.AddDate(0, 0, -offset))
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	case PeriodQuarter:
		quarterStart := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), quarterStart, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	case PeriodCustom:
		if customFrom != nil {
			f := *customFrom
			start = time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, loc)
		} else {
			start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		}
		if customTo != nil {
			t := *customTo
			end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, loc)
		}
	default:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	}
	return start, end
}

// InRange es el test de inclusión de registros en un reporte: intervalo
// cerrado en ambos extremos (date >= start && date <= end).
func InRange(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}
