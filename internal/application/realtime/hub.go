// Package realtime implementa la notificación de cambios por colección y el
// cache de stock inyectable. El almacén original entregaba snapshots completos
// de la colección en cada cambio (no diffs); el Hub conserva esa semántica:
// los suscriptores siempre reciben el estado completo y re-derivan todo.
package realtime

import "sync"

// Kind identifica una colección por dueño.
type Kind string

const (
	KindProducts  Kind = "products"
	KindMovements Kind = "movements"
	KindExpenses  Kind = "expenses"
)

// Snapshot es el estado completo de una colección tras una escritura.
// El tipo concreto de Items depende de la colección ([]*entity.Product, etc.).
type Snapshot struct {
	OwnerID string
	Kind    Kind
	Items   any
}

// Unsubscribe cancela una suscripción. Idempotente.
type Unsubscribe func()

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Hub despacha snapshots a los suscriptores de cada (dueño, colección).
// Los casos de uso publican después de cada escritura exitosa; las entregas
// son síncronas y en el orden de suscripción.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string][]subscriber // clave ownerID + "/" + kind
}

// NewHub construye un hub vacío.
func NewHub() *Hub {
	return &Hub{subs: make(map[string][]subscriber)}
}

// Subscribe registra un callback para los cambios de una colección del dueño.
func (h *Hub) Subscribe(ownerID string, kind Kind, fn func(Snapshot)) Unsubscribe {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	key := ownerID + "/" + string(kind)
	h.subs[key] = append(h.subs[key], subscriber{id: id, fn: fn})

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		list := h.subs[key]
		for i, s := range list {
			if s.id == id {
				h.subs[key] = append(list[:i], list[i+1:]...)
				return
			}
		}
	}
}

// Publish entrega el snapshot completo a todos los suscriptores de la
// colección. Los callbacks se invocan fuera del lock para permitir que un
// suscriptor se desuscriba desde su propio callback.
func (h *Hub) Publish(snap Snapshot) {
	h.mu.Lock()
	key := snap.OwnerID + "/" + string(snap.Kind)
	list := make([]subscriber, len(h.subs[key]))
	copy(list, h.subs[key])
	h.mu.Unlock()

	for _, s := range list {
		s.fn(snap)
	}
}
