package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
)

// newMockRepo wires a kvRepository to a sqlmock-backed database.
func newMockRepo(t *testing.T) (KeyValueRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := &DB{DB: db, logger: logger.Nop()}
	return NewKeyValueRepository(wrapped, logger.Nop()), mock
}

// ── Get ───────────────────────────────────────────────────────────────────────

func TestKVRepository_Get_Found(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries WHERE key = \?`).
		WithArgs("credential").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("token-123"))

	got, err := repo.Get(context.Background(), "credential")
	require.NoError(t, err)
	assert.Equal(t, "token-123", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Get_Missing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WithArgs("identity").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), "identity")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVRepository_Get_QueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT value FROM kv_entries`).
		WithArgs("identity").
		WillReturnError(assert.AnError)

	_, err := repo.Get(context.Background(), "identity")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Set ───────────────────────────────────────────────────────────────────────

func TestKVRepository_Set_Upserts(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT OR REPLACE INTO kv_entries \(key,value,updated_at\)`).
		WithArgs("credential", "token-456", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "credential", "token-456")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Set_ExecError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT OR REPLACE INTO kv_entries`).
		WillReturnError(assert.AnError)

	err := repo.Set(context.Background(), "credential", "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── Delete ────────────────────────────────────────────────────────────────────

func TestKVRepository_Delete_RemovesKey(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM kv_entries WHERE key = \?`).
		WithArgs("credential").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "credential")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKVRepository_Delete_AbsentKeyIsNoError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM kv_entries`).
		WithArgs("never-set").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "never-set")
	assert.NoError(t, err)
}
