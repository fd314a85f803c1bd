// Package expense contiene los casos de uso CRUD de gastos operativos.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/liftory/liftory-api/internal/application/dto"
	"github.com/liftory/liftory-api/internal/application/realtime"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
	"github.com/liftory/liftory-api/internal/domain/repository"
)

// UseCase casos de uso de gastos. Los gastos no tocan stock: solo entran a los
// agregados financieros.
type UseCase struct {
	repo repository.ExpenseRepository
	hub  *realtime.Hub
}

// NewUseCase construye el caso de uso. hub puede ser nil.
func NewUseCase(repo repository.ExpenseRepository, hub *realtime.Hub) *UseCase {
	return &UseCase{repo: repo, hub: hub}
}

// Create registra un gasto. El monto no puede ser negativo; categorías y
// recurrencias desconocidas caen en sus valores por defecto (other/once).
func (uc *UseCase) Create(ctx context.Context, ownerID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Category:    entity.NormalizeExpenseCategory(in.Category),
		Date:        date,
		Amount:      in.Amount,
		Recurring:   entity.NormalizeRecurring(in.Recurring),
		Description: in.Description,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	uc.publish(ownerID)
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// List devuelve todos los gastos del dueño.
func (uc *UseCase) List(ctx context.Context, ownerID string) (*dto.ExpenseListResponse, error) {
	expenses, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("listar gastos: %w", err)
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{Items: items, Total: len(items)}, nil
}

// Update modifica un gasto existente.
func (uc *UseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		expense.Category = entity.NormalizeExpenseCategory(*in.Category)
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	if in.Amount != nil {
		if in.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Recurring != nil {
		expense.Recurring = entity.NormalizeRecurring(*in.Recurring)
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	if in.Notes != nil {
		expense.Notes = *in.Notes
	}
	expense.UpdatedAt = time.Now()
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	uc.publish(ownerID)
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// Delete elimina un gasto.
func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	expense, err := uc.repo.GetByID(ownerID, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ownerID, id); err != nil {
		return err
	}
	uc.publish(ownerID)
	return nil
}

func (uc *UseCase) publish(ownerID string) {
	if uc.hub == nil {
		return
	}
	items, err := uc.repo.ListByOwner(ownerID)
	if err != nil {
		return
	}
	uc.hub.Publish(realtime.Snapshot{OwnerID: ownerID, Kind: realtime.KindExpenses, Items: items})
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Date:        e.Date,
		Amount:      e.Amount,
		Recurring:   e.Recurring,
		Description: e.Description,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
