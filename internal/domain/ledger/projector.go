// Package ledger contiene los servicios de dominio puros sobre el ledger de
// movimientos: proyección de stock, validación de movimientos y reconciliación
// de ediciones de stock. Ninguna función de este paquete hace I/O ni muta sus
// entradas; son seguras para llamadas concurrentes.
package ledger

import "github.com/liftory/liftory-api/internal/domain/entity"

// CurrentStock deriva el stock actual de un producto plegando su stock inicial
// con todos sus movimientos: venta resta |cantidad|, compra suma |cantidad|,
// ajuste suma la cantidad con signo. La suma es conmutativa, así que el orden
// de los movimientos no importa.
//
// Movimientos de otros productos y tipos desconocidos (datos legados) se
// ignoran. El resultado se recorta a 0: un historial inconsistente (p. ej. una
// sobreventa por escrituras concurrentes) nunca se reporta como stock negativo.
func CurrentStock(product *entity.Product, movements []*entity.Movement) int64 {
	stock := product.InitialStock
	for _, m := range movements {
		if m.ProductID != product.ID {
			continue
		}
		switch m.Type {
		case entity.MovementTypeSale:
			stock -= abs(m.Quantity)
		case entity.MovementTypePurchase:
			stock += abs(m.Quantity)
		case entity.MovementTypeAdjustment:
			stock += m.Quantity
		}
	}
	if stock < 0 {
		return 0
	}
	return stock
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
