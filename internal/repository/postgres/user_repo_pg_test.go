package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

var userColumns = []string{"id", "username", "password", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	id := uuid.New()
	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "alice", "hash", now))

	user, err := repo.Create(context.Background(), "alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash", user.Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), "alice", "hash")
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	id := uuid.New()
	mock.ExpectQuery("FROM users\\s+WHERE username = \\$1").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(id.String(), "alice", "hash", time.Now()))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery("FROM users\\s+WHERE id = \\$1").
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
