package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/liftory/liftory-api/internal/domain/entity"
)

// ProductSales es el acumulado de ventas de un producto para el ranking.
type ProductSales struct {
	ProductID string
	Name      string
	Image     string
	Quantity  int64
	Revenue   decimal.Decimal
}

// TopProducts rankea los productos más vendidos dentro de los movimientos
// dados, ordenados por ingreso descendente, tope n (n <= 0 devuelve todos).
//
// El agrupamiento usa el snapshot ProductName del movimiento (minúsculas, sin
// espacios extremos) y no la tabla de productos: los movimientos huérfanos de
// productos ya eliminados siguen contando en el ranking.
func TopProducts(movements []*entity.Movement, n int) []ProductSales {
	byName := make(map[string]*ProductSales)
	for _, m := range movements {
		if m.Type != entity.MovementTypeSale || m.ProductName == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(m.ProductName))
		entry, ok := byName[key]
		if !ok {
			entry = &ProductSales{
				ProductID: m.ProductID,
				Name:      m.ProductName,
				Image:     m.ProductImage,
				Revenue:   decimal.Zero,
			}
			byName[key] = entry
		}
		entry.Quantity += m.Quantity
		entry.Revenue = entry.Revenue.Add(m.Total)
	}

	ranked := make([]ProductSales, 0, len(byName))
	for _, entry := range byName {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Revenue.Equal(ranked[j].Revenue) {
			return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
		}
		return ranked[i].Name < ranked[j].Name
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
