package services

import (
	"context"
	"testing"
	"time"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAttributeService(t *testing.T) (*AttributeService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewAttributeService(db), mock
}

func attributeRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "object_id", "name", "value", "created_on", "updated_on"})
}

func TestAttributeService_Set(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(1, "color", "red").
		WillReturnRows(attributeRows().AddRow(3, 1, "color", "red", now, now))

	attr, err := svc.Set(ctx, 1, "color", "red")

	require.NoError(t, err)
	assert.Equal(t, "color", attr.Name)
	assert.Equal(t, "red", attr.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Setting the same name again keeps the row and replaces the value.
func TestAttributeService_Set_Overwrite(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(1, "color", "blue").
		WillReturnRows(attributeRows().AddRow(3, 1, "color", "blue", now, now))

	attr, err := svc.Set(ctx, 1, "color", "blue")

	require.NoError(t, err)
	assert.Equal(t, 3, attr.ID)
	assert.Equal(t, "blue", attr.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_Set_UnknownObject(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(99, "color", "red").
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	_, err := svc.Set(ctx, 99, "color", "red")

	assert.ErrorIs(t, err, ErrUnknownReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_SetBulk(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(1, "color", "red").
		WillReturnRows(attributeRows().AddRow(3, 1, "color", "red", now, now))
	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(1, "size", "large").
		WillReturnRows(attributeRows().AddRow(4, 1, "size", "large", now, now))
	mock.ExpectCommit()

	attrs, err := svc.SetBulk(ctx, []AttributeInput{
		{ObjectID: 1, Name: "color", Value: "red"},
		{ObjectID: 1, Name: "size", Value: "large"},
	})

	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_GetByName_NotFound(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM attributes WHERE object_id = \$1 AND name = \$2`).
		WithArgs(1, "missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByName(ctx, 1, "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_GetMap(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM attributes WHERE object_id = \$1`).
		WithArgs(1).
		WillReturnRows(attributeRows().
			AddRow(3, 1, "color", "red", now, now).
			AddRow(4, 1, "size", "large", now, now))

	m, err := svc.GetMap(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"color": "red", "size": "large"}, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_GetMap_Empty(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT .+ FROM attributes WHERE object_id = \$1`).
		WithArgs(1).
		WillReturnRows(attributeRows())

	m, err := svc.GetMap(ctx, 1)

	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// SetMap upserts names in sorted order, so expectations can be declared
// deterministically.
func TestAttributeService_SetMap(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(1, "color", "red").
		WillReturnRows(attributeRows().AddRow(3, 1, "color", "red", now, now))
	mock.ExpectQuery(`INSERT INTO attributes`).
		WithArgs(1, "size", "large").
		WillReturnRows(attributeRows().AddRow(4, 1, "size", "large", now, now))
	mock.ExpectCommit()

	attrs, err := svc.SetMap(ctx, 1, map[string]string{
		"size":  "large",
		"color": "red",
	})

	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "color", attrs[0].Name)
	assert.Equal(t, "size", attrs[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_Update(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`UPDATE attributes SET value`).
		WithArgs("green", 3).
		WillReturnRows(attributeRows().AddRow(3, 1, "color", "green", now, now))

	attr, err := svc.Update(ctx, 3, "green")

	require.NoError(t, err)
	assert.Equal(t, "green", attr.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttributeService_Delete_NotFound(t *testing.T) {
	svc, mock := setupAttributeService(t)
	ctx := context.Background()

	mock.ExpectExec(`DELETE FROM attributes WHERE id`).
		WithArgs(3).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.Delete(ctx, 3)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
