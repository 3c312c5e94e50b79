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

func TestFixedPaymentRepository_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixedPaymentRepository(db)

	fp := &model.FixedPayment{
		UserID:      uuid.New(),
		AccountID:   uuid.New(),
		CategoryID:  uuid.New(),
		Description: "Renta",
		Amount:      decimal.NewFromInt(8500),
		Frequency:   model.FrequencyMonthly,
		StartDate:   datetime.NewDate(2025, 1, 1),
		NextDueDate: datetime.NewDate(2025, 7, 1),
		IsActive:    true,
	}

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())

	mock.ExpectQuery(`INSERT INTO fixed_payments`).
		WithArgs(sqlmock.AnyArg(), fp.UserID, fp.AccountID, fp.CategoryID, fp.Description,
			fp.Amount, fp.Frequency, fp.StartDate, fp.NextDueDate, fp.IsActive).
		WillReturnRows(rows)

	err := repo.Create(context.Background(), fp)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, fp.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixedPaymentRepository_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixedPaymentRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM fixed_payments WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, ErrFixedPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixedPaymentRepository_ListActiveWithCategory(t *testing.T) {
	t.Parallel()

	t.Run("joins category names", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		repo := NewFixedPaymentRepository(db)

		userID := uuid.New()
		catID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "category_id", "category", "amount"}).
			AddRow(uuid.New(), catID, "Vivienda", decimal.NewFromInt(8500)).
			AddRow(uuid.New(), catID, "Vivienda", decimal.NewFromInt(350))

		mock.ExpectQuery(`SELECT fp\.id, fp\.category_id, c\.name AS category, fp\.amount`).
			WithArgs(userID).
			WillReturnRows(rows)

		payments, err := repo.ListActiveWithCategory(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, payments, 2)
		assert.Equal(t, "Vivienda", payments[0].Category)
		assert.Equal(t, catID, payments[0].CategoryID)
		assert.True(t, payments[1].Amount.Equal(decimal.NewFromInt(350)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no active payments", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		repo := NewFixedPaymentRepository(db)

		userID := uuid.New()
		mock.ExpectQuery(`SELECT fp\.id, fp\.category_id`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "category", "amount"}))

		payments, err := repo.ListActiveWithCategory(context.Background(), userID)

		assert.NoError(t, err)
		assert.Empty(t, payments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFixedPaymentRepository_List_Filters(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixedPaymentRepository(db)

	userID := uuid.New()
	active := true

	rows := sqlmock.NewRows([]string{"id", "user_id", "account_id", "category_id", "description", "amount", "frequency", "start_date", "next_due_date", "is_active", "created_at"}).
		AddRow(uuid.New(), userID, uuid.New(), uuid.New(), "Renta", decimal.NewFromInt(8500), "monthly", time.Now(), time.Now(), true, time.Now())

	mock.ExpectQuery(`SELECT \* FROM fixed_payments`).
		WithArgs(&userID, &active).
		WillReturnRows(rows)

	payments, err := repo.List(context.Background(), FixedPaymentFilters{UserID: &userID, IsActive: &active})

	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, model.FrequencyMonthly, payments[0].Frequency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixedPaymentRepository_Delete_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewFixedPaymentRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM fixed_payments WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrFixedPaymentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
