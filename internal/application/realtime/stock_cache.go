package realtime

import "sync"

// StockCache memoriza stock proyectado por producto. Es un objeto explícito e
// inyectable, nunca estado ambiente de paquete: quien escribe en el ledger (o
// recibe una notificación del Hub) debe llamar Invalidate, porque cualquier
// escritura puede cambiar la proyección de cualquier producto.
type StockCache struct {
	mu    sync.RWMutex
	stock map[string]int64
}

// NewStockCache construye un cache vacío.
func NewStockCache() *StockCache {
	return &StockCache{stock: make(map[string]int64)}
}

// Get devuelve el stock cacheado del producto, si existe.
func (c *StockCache) Get(productID string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.stock[productID]
	return v, ok
}

// Set guarda el stock proyectado del producto.
func (c *StockCache) Set(productID string, stock int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stock[productID] = stock
}

// Invalidate descarta todas las entradas.
func (c *StockCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stock = make(map[string]int64)
}
