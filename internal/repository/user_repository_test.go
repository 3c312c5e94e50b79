package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/lana-app/backend/internal/model"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestNewUserRepository(t *testing.T) {
	t.Parallel()

	db, _ := newMockDB(t)
	repo := NewUserRepository(db)
	assert.NotNil(t, repo)
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	user := &model.User{
		FullName:     "Ana López",
		Email:        "ana@example.com",
		PasswordHash: "$2y$10$abcdef",
		Verified:     true,
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(sqlmock.AnyArg(), user.FullName, user.Email, nil, user.PasswordHash, user.Verified).
		WillReturnRows(rows)

	err := repo.Create(context.Background(), user)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "full_name", "email", "phone", "password_hash", "verified", "created_at", "updated_at"}).
					AddRow(uuid.New(), "Ana López", "ana@example.com", nil, "$2y$10$abcdef", true, time.Now(), time.Now())
				mock.ExpectQuery(`SELECT \* FROM users WHERE email = \$1`).
					WithArgs("ana@example.com").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT \* FROM users WHERE email = \$1`).
					WithArgs("ana@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock := newMockDB(t)
			repo := NewUserRepository(db)
			tt.setupMock(mock)

			user, err := repo.GetByEmail(context.Background(), "ana@example.com")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ana@example.com", user.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_EmailExists(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("ana@example.com").
		WillReturnRows(rows)

	exists, err := repo.EmailExists(context.Background(), "ana@example.com")

	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	user := &model.User{ID: uuid.New(), FullName: "Ana", Email: "ana@example.com"}

	mock.ExpectQuery(`UPDATE users`).
		WithArgs(user.ID, user.FullName, user.Email, nil, "", false).
		WillReturnError(sql.ErrNoRows)

	err := repo.Update(context.Background(), user)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		db, mock := newMockDB(t)
		repo := NewUserRepository(db)

		id := uuid.New()
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
