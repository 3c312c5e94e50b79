package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lana-app/backend/internal/model"
	"github.com/lana-app/backend/pkg/datetime"
)

func TestTransactionRepository_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	catID := uuid.New()
	tx := &model.Transaction{
		UserID:     uuid.New(),
		AccountID:  uuid.New(),
		CategoryID: &catID,
		Amount:     decimal.NewFromFloat(150.50),
		Kind:       model.TransactionKindExpense,
		Date:       datetime.NewDate(2025, 6, 15),
	}

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())

	mock.ExpectQuery(`INSERT INTO transactions`).
		WithArgs(sqlmock.AnyArg(), tx.UserID, tx.AccountID, tx.CategoryID, tx.Amount, tx.Kind, nil, tx.Date).
		WillReturnRows(rows)

	err := repo.Create(context.Background(), tx)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM transactions WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_List_Filters(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	userID := uuid.New()
	kind := model.TransactionKindExpense

	rows := sqlmock.NewRows([]string{"id", "user_id", "account_id", "category_id", "amount", "kind", "description", "date", "created_at"}).
		AddRow(uuid.New(), userID, uuid.New(), nil, decimal.NewFromInt(100), "expense", nil, time.Now(), time.Now())

	mock.ExpectQuery(`SELECT \* FROM transactions`).
		WithArgs(&userID, nil, nil, &kind).
		WillReturnRows(rows)

	transactions, err := repo.List(context.Background(), TransactionFilters{UserID: &userID, Kind: &kind})

	assert.NoError(t, err)
	assert.Len(t, transactions, 1)
	assert.Equal(t, userID, transactions[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_TotalsByCategory(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"category", "kind", "total"}).
		AddRow("Salario", "income", decimal.NewFromInt(25000)).
		AddRow("Comida", "expense", decimal.NewFromFloat(3150.75))

	mock.ExpectQuery(`SELECT c\.name AS category, c\.kind AS kind, SUM\(t\.amount\) AS total`).
		WithArgs(userID).
		WillReturnRows(rows)

	totals, err := repo.TotalsByCategory(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, "Salario", totals[0].Category)
	assert.Equal(t, model.CategoryKindIncome, totals[0].Kind)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromFloat(3150.75)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	tx := &model.Transaction{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Amount:    decimal.NewFromInt(100),
		Kind:      model.TransactionKindIncome,
		Date:      datetime.NewDate(2025, 6, 15),
	}

	mock.ExpectExec(`UPDATE transactions`).
		WithArgs(tx.ID, tx.AccountID, nil, tx.Amount, tx.Kind, nil, tx.Date).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Update(context.Background(), tx), ErrTransactionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
