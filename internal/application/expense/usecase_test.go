package expense_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftory/liftory-api/internal/application/dto"
	"github.com/liftory/liftory-api/internal/application/expense"
	"github.com/liftory/liftory-api/internal/domain"
	"github.com/liftory/liftory-api/internal/domain/entity"
)

type fakeExpenseRepo struct {
	items map[string]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{items: make(map[string]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(e *entity.Expense) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(ownerID, id string) (*entity.Expense, error) {
	e, ok := r.items[id]
	if !ok || e.OwnerID != ownerID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeExpenseRepo) ListByOwner(ownerID string) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.items {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(e *entity.Expense) error {
	if _, ok := r.items[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(ownerID, id string) error {
	delete(r.items, id)
	return nil
}

const ownerA = "owner-a"

func TestCreate_CategoriaDesconocida_CaeEnOther(t *testing.T) {
	uc := expense.NewUseCase(newFakeExpenseRepo(), nil)

	out, err := uc.Create(context.Background(), ownerA, dto.CreateExpenseRequest{
		Category:  "mascota de la tienda",
		Recurring: "cada-luna-llena",
		Amount:    decimal.RequireFromString("12.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseCategoryOther, out.Category)
	assert.Equal(t, entity.RecurringOnce, out.Recurring)
}

func TestCreate_MontoNegativo_RetornaErrInvalidInput(t *testing.T) {
	uc := expense.NewUseCase(newFakeExpenseRepo(), nil)

	_, err := uc.Create(context.Background(), ownerA, dto.CreateExpenseRequest{
		Category: entity.ExpenseCategoryRent,
		Amount:   decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_NormalizaCategoriaYRecurrencia(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expense.NewUseCase(repo, nil)

	created, err := uc.Create(context.Background(), ownerA, dto.CreateExpenseRequest{
		Category: entity.ExpenseCategoryRent,
		Amount:   decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	cat := "categoría inventada"
	rec := entity.RecurringMonthly
	out, err := uc.Update(context.Background(), ownerA, created.ID, dto.UpdateExpenseRequest{
		Category:  &cat,
		Recurring: &rec,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ExpenseCategoryOther, out.Category)
	assert.Equal(t, entity.RecurringMonthly, out.Recurring)
}

func TestUpdate_GastoInexistente_RetornaErrNotFound(t *testing.T) {
	uc := expense.NewUseCase(newFakeExpenseRepo(), nil)

	_, err := uc.Update(context.Background(), ownerA, "nope", dto.UpdateExpenseRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_GastoDeOtroDueno_RetornaErrNotFound(t *testing.T) {
	repo := newFakeExpenseRepo()
	uc := expense.NewUseCase(repo, nil)

	created, err := uc.Create(context.Background(), ownerA, dto.CreateExpenseRequest{
		Category: entity.ExpenseCategoryRent,
		Amount:   decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	err = uc.Delete(context.Background(), "owner-b", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "los gastos se escopean por dueño")
}
