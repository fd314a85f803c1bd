package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un negocio.
//
// InitialStock es el stock en el momento en que el producto entró al sistema
// y es inmutable después de la creación: las "ediciones de stock" del usuario
// se traducen en movimientos de ajuste (ver ledger.Reconcile), nunca en una
// mutación de este campo. El stock actual siempre se deriva del ledger.
type Product struct {
	ID            string
	OwnerID       string
	Name          string
	Code          string // código único por dueño, usado para búsqueda y escaneo
	Category      string
	PurchasePrice decimal.Decimal // precio de compra (costo)
	SalePrice     decimal.Decimal // precio de venta
	InitialStock  int64           // stock base al crear el producto; inmutable
	MinStock      int64           // umbral de reposición
	Image         string          // referencia opcional a la imagen
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
