package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrDuplicateName    = errors.New("name already exists")
	ErrUnknownReference = errors.New("referenced entity does not exist")
	ErrNotFound         = errors.New("not found")
	ErrVersionConflict  = errors.New("version conflict")
	ErrTypeInUse        = errors.New("type is referenced by existing objects")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
