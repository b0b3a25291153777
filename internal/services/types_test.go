package services

import (
	"context"
	"testing"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTypeService(t *testing.T) (*TypeService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewTypeService(db), mock
}

func TestTypeService_Create(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()
	description := "a folder of things"

	rows := pgxmock.NewRows([]string{"id", "type_name", "description"}).
		AddRow(typeID, "Folder", &description)

	mock.ExpectQuery(`INSERT INTO type`).
		WithArgs("Folder", &description).
		WillReturnRows(rows)

	created, err := svc.Create(ctx, "Folder", &description)

	require.NoError(t, err)
	assert.Equal(t, typeID, created.ID)
	assert.Equal(t, "Folder", created.TypeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_Create_DuplicateName(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()

	mock.ExpectQuery(`INSERT INTO type`).
		WithArgs("Folder", (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	_, err := svc.Create(ctx, "Folder", nil)

	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_CreateBulk(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	id1 := uuid.New()
	id2 := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO type`).
		WithArgs("Folder", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "type_name", "description"}).
			AddRow(id1, "Folder", (*string)(nil)))
	mock.ExpectQuery(`INSERT INTO type`).
		WithArgs("Document", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "type_name", "description"}).
			AddRow(id2, "Document", (*string)(nil)))
	mock.ExpectCommit()

	types, err := svc.CreateBulk(ctx, []TypeInput{
		{TypeName: "Folder"},
		{TypeName: "Document"},
	})

	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Folder", types[0].TypeName)
	assert.Equal(t, "Document", types[1].TypeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_CreateBulk_RollsBackOnDuplicate(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	id1 := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO type`).
		WithArgs("Folder", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "type_name", "description"}).
			AddRow(id1, "Folder", (*string)(nil)))
	mock.ExpectQuery(`INSERT INTO type`).
		WithArgs("Folder", (*string)(nil)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	_, err := svc.CreateBulk(ctx, []TypeInput{
		{TypeName: "Folder"},
		{TypeName: "Folder"},
	})

	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_GetByID(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()

	rows := pgxmock.NewRows([]string{"id", "type_name", "description"}).
		AddRow(typeID, "Folder", (*string)(nil))

	mock.ExpectQuery(`SELECT .+ FROM type WHERE id`).
		WithArgs(typeID).
		WillReturnRows(rows)

	got, err := svc.GetByID(ctx, typeID)

	require.NoError(t, err)
	assert.Equal(t, typeID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_GetByID_NotFound(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM type WHERE id`).
		WithArgs(typeID).
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.GetByID(ctx, typeID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_List(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()

	rows := pgxmock.NewRows([]string{"id", "type_name", "description"}).
		AddRow(uuid.New(), "Document", (*string)(nil)).
		AddRow(uuid.New(), "Folder", (*string)(nil))

	mock.ExpectQuery(`SELECT .+ FROM type`).
		WithArgs("", 0, 100).
		WillReturnRows(rows)

	types, err := svc.List(ctx, 0, 100, "")

	require.NoError(t, err)
	assert.Len(t, types, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_Update(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()
	name := "Archive"

	rows := pgxmock.NewRows([]string{"id", "type_name", "description"}).
		AddRow(typeID, name, (*string)(nil))

	mock.ExpectQuery(`UPDATE type`).
		WithArgs(&name, (*string)(nil), typeID).
		WillReturnRows(rows)

	updated, err := svc.Update(ctx, typeID, &name, nil)

	require.NoError(t, err)
	assert.Equal(t, name, updated.TypeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_Update_NoFields(t *testing.T) {
	svc, _ := setupTypeService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, uuid.New(), nil, nil)

	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestTypeService_Delete(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()

	mock.ExpectExec(`DELETE FROM type WHERE id`).
		WithArgs(typeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.Delete(ctx, typeID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_Delete_InUse(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()

	mock.ExpectExec(`DELETE FROM type WHERE id`).
		WithArgs(typeID).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := svc.Delete(ctx, typeID)

	assert.ErrorIs(t, err, ErrTypeInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTypeService_Delete_NotFound(t *testing.T) {
	svc, mock := setupTypeService(t)
	ctx := context.Background()
	typeID := uuid.New()

	mock.ExpectExec(`DELETE FROM type WHERE id`).
		WithArgs(typeID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.Delete(ctx, typeID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
