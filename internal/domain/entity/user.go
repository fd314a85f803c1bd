package entity

import "time"

// User es la cuenta del dueño del negocio. Todas las colecciones (productos,
// movimientos, gastos) se escopean por su ID.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
