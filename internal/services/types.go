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

type TypeService struct {
	db *database.DB
}

func NewTypeService(db *database.DB) *TypeService {
	return &TypeService{db: db}
}

// TypeInput carries the fields of one type for bulk creation.
type TypeInput struct {
	TypeName    string
	Description *string
}

func (s *TypeService) Create(ctx context.Context, typeName string, description *string) (*models.Type, error) {
	var t models.Type
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO type (type_name, description)
		VALUES ($1, $2)
		RETURNING id, type_name, description
	`, typeName, description).Scan(&t.ID, &t.TypeName, &t.Description)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &t, nil
}

func (s *TypeService) CreateBulk(ctx context.Context, inputs []TypeInput) ([]models.Type, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	types := make([]models.Type, 0, len(inputs))
	for _, in := range inputs {
		var t models.Type
		err := tx.QueryRow(ctx, `
			INSERT INTO type (type_name, description)
			VALUES ($1, $2)
			RETURNING id, type_name, description
		`, in.TypeName, in.Description).Scan(&t.ID, &t.TypeName, &t.Description)
		if err != nil {
			if isPgError(err, pgUniqueViolation) {
				return nil, ErrDuplicateName
			}
			return nil, err
		}
		types = append(types, t)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return types, nil
}

func (s *TypeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Type, error) {
	var t models.Type
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, type_name, description FROM type WHERE id = $1
	`, id).Scan(&t.ID, &t.TypeName, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *TypeService) List(ctx context.Context, skip, limit int, name string) ([]models.Type, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, type_name, description FROM type
		WHERE ($1 = '' OR type_name ILIKE '%' || $1 || '%')
		ORDER BY type_name
		OFFSET $2 LIMIT $3
	`, name, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.Type
	for rows.Next() {
		var t models.Type
		if err := rows.Scan(&t.ID, &t.TypeName, &t.Description); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *TypeService) Update(ctx context.Context, id uuid.UUID, typeName, description *string) (*models.Type, error) {
	if typeName == nil && description == nil {
		return nil, ErrNoFieldsToUpdate
	}

	var t models.Type
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE type
		SET type_name = COALESCE($1, type_name),
		    description = COALESCE($2, description)
		WHERE id = $3
		RETURNING id, type_name, description
	`, typeName, description, id).Scan(&t.ID, &t.TypeName, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a type. Types still referenced by objects cannot be
// deleted; the foreign key restriction surfaces as ErrTypeInUse.
func (s *TypeService) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM type WHERE id = $1`, id)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return ErrTypeInUse
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TypeService) GetObjects(ctx context.Context, typeID uuid.UUID) ([]models.Object, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, name, version, type_id, created_on, created_by
		FROM object WHERE type_id = $1
		ORDER BY id
	`, typeID)
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
