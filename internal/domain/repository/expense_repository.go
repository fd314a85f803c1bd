package repository

import "github.com/liftory/liftory-api/internal/domain/entity"

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(ownerID, id string) (*entity.Expense, error)
	ListByOwner(ownerID string) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(ownerID, id string) error
}
