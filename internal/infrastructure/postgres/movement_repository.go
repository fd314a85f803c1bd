package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	"github.com/liftory/liftory-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El ledger es append-only: no hay UPDATE de movimientos.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, owner_id, product_id, product_name, product_code, product_image, type, quantity, price, total, date, notes, created_at, updated_at`

// Create persiste un movimiento nuevo.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.OwnerID, m.ProductID, m.ProductName, m.ProductCode, m.ProductImage,
		m.Type, m.Quantity, m.Price, m.Total, m.Date, m.Notes, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, escopeado al dueño.
func (r *MovementRepo) GetByID(ownerID, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE owner_id = $1 AND id = $2`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, ownerID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByOwner lista el ledger completo del dueño, fecha descendente.
func (r *MovementRepo) ListByOwner(ownerID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE owner_id = $1 ORDER BY date DESC`
	return r.list(query, ownerID)
}

// ListByProduct lista los movimientos de un producto, fecha descendente.
func (r *MovementRepo) ListByProduct(ownerID, productID string) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE owner_id = $1 AND product_id = $2 ORDER BY date DESC`
	return r.list(query, ownerID, productID)
}

// Delete elimina un movimiento (acción explícita del usuario).
func (r *MovementRepo) Delete(ownerID, id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAllByOwner vacía el ledger del dueño.
func (r *MovementRepo) DeleteAllByOwner(ownerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("delete all movements: %w", err)
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.ProductID, &m.ProductName, &m.ProductCode, &m.ProductImage,
		&m.Type, &m.Quantity, &m.Price, &m.Total, &m.Date, &m.Notes, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
