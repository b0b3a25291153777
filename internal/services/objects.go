package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ObjectService struct {
	db *database.DB
}

func NewObjectService(db *database.DB) *ObjectService {
	return &ObjectService{db: db}
}

// ObjectInput carries the fields of one object for bulk creation.
type ObjectInput struct {
	Name      string
	TypeID    uuid.UUID
	CreatedBy string
}

func (s *ObjectService) Create(ctx context.Context, name string, typeID uuid.UUID, createdBy string) (*models.Object, error) {
	var o models.Object
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO object (name, type_id, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, name, version, type_id, created_on, created_by
	`, name, typeID, createdBy).Scan(&o.ID, &o.Name, &o.Version, &o.TypeID, &o.CreatedOn, &o.CreatedBy)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}
	return &o, nil
}

func (s *ObjectService) CreateBulk(ctx context.Context, inputs []ObjectInput) ([]models.Object, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	objects := make([]models.Object, 0, len(inputs))
	for _, in := range inputs {
		var o models.Object
		err := tx.QueryRow(ctx, `
			INSERT INTO object (name, type_id, created_by)
			VALUES ($1, $2, $3)
			RETURNING id, name, version, type_id, created_on, created_by
		`, in.Name, in.TypeID, in.CreatedBy).Scan(&o.ID, &o.Name, &o.Version, &o.TypeID, &o.CreatedOn, &o.CreatedBy)
		if err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				return nil, ErrUnknownReference
			}
			return nil, err
		}
		objects = append(objects, o)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return objects, nil
}

func (s *ObjectService) GetByID(ctx context.Context, id int) (*models.Object, error) {
	var o models.Object
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, version, type_id, created_on, created_by
		FROM object WHERE id = $1
	`, id).Scan(&o.ID, &o.Name, &o.Version, &o.TypeID, &o.CreatedOn, &o.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (s *ObjectService) List(ctx context.Context, skip, limit int, typeID *uuid.UUID, name string) ([]models.Object, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, version, type_id, created_on, created_by
		FROM object
		WHERE ($1::uuid IS NULL OR type_id = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY id
		OFFSET $3 LIMIT $4
	`, typeID, name, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objects []models.Object
	for rows.Next() {
		var o models.Object
		if err := rows.Scan(&o.ID, &o.Name, &o.Version, &o.TypeID, &o.CreatedOn, &o.CreatedBy); err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	return objects, rows.Err()
}

func (s *ObjectService) Update(ctx context.Context, id int, name *string, typeID *uuid.UUID, createdBy *string) (*models.Object, error) {
	if name == nil && typeID == nil && createdBy == nil {
		return nil, ErrNoFieldsToUpdate
	}

	var o models.Object
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE object
		SET name = COALESCE($1, name),
		    type_id = COALESCE($2, type_id),
		    created_by = COALESCE($3, created_by)
		WHERE id = $4
		RETURNING id, name, version, type_id, created_on, created_by
	`, name, typeID, createdBy, id).Scan(&o.ID, &o.Name, &o.Version, &o.TypeID, &o.CreatedOn, &o.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}
	return &o, nil
}

// Delete removes an object. Attributes, permissions, versioning records and
// links referencing it are removed by the cascade rules.
func (s *ObjectService) Delete(ctx context.Context, id int) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM object WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
