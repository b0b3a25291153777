package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type AttributeService struct {
	db *database.DB
}

func NewAttributeService(db *database.DB) *AttributeService {
	return &AttributeService{db: db}
}

// AttributeInput carries the fields of one attribute for bulk creation.
type AttributeInput struct {
	ObjectID int
	Name     string
	Value    string
}

// Set creates or overwrites the named attribute of an object. Setting an
// existing name never produces a second row.
func (s *AttributeService) Set(ctx context.Context, objectID int, name, value string) (*models.Attribute, error) {
	var a models.Attribute
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO attributes (object_id, name, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (object_id, name) DO UPDATE SET value = EXCLUDED.value, updated_on = NOW()
		RETURNING id, object_id, name, value, created_on, updated_on
	`, objectID, name, value).Scan(&a.ID, &a.ObjectID, &a.Name, &a.Value, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}
	return &a, nil
}

func (s *AttributeService) SetBulk(ctx context.Context, inputs []AttributeInput) ([]models.Attribute, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	attrs := make([]models.Attribute, 0, len(inputs))
	for _, in := range inputs {
		var a models.Attribute
		err := tx.QueryRow(ctx, `
			INSERT INTO attributes (object_id, name, value)
			VALUES ($1, $2, $3)
			ON CONFLICT (object_id, name) DO UPDATE SET value = EXCLUDED.value, updated_on = NOW()
			RETURNING id, object_id, name, value, created_on, updated_on
		`, in.ObjectID, in.Name, in.Value).Scan(&a.ID, &a.ObjectID, &a.Name, &a.Value, &a.CreatedOn, &a.UpdatedOn)
		if err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				return nil, ErrUnknownReference
			}
			return nil, err
		}
		attrs = append(attrs, a)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return attrs, nil
}

func (s *AttributeService) GetByID(ctx context.Context, id int) (*models.Attribute, error) {
	var a models.Attribute
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, object_id, name, value, created_on, updated_on
		FROM attributes WHERE id = $1
	`, id).Scan(&a.ID, &a.ObjectID, &a.Name, &a.Value, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *AttributeService) List(ctx context.Context, skip, limit int) ([]models.Attribute, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, name, value, created_on, updated_on
		FROM attributes
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttributes(rows)
}

func (s *AttributeService) Update(ctx context.Context, id int, value string) (*models.Attribute, error) {
	var a models.Attribute
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE attributes SET value = $1, updated_on = NOW()
		WHERE id = $2
		RETURNING id, object_id, name, value, created_on, updated_on
	`, value, id).Scan(&a.ID, &a.ObjectID, &a.Name, &a.Value, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *AttributeService) Delete(ctx context.Context, id int) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM attributes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AttributeService) GetByObject(ctx context.Context, objectID int) ([]models.Attribute, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, name, value, created_on, updated_on
		FROM attributes WHERE object_id = $1
		ORDER BY name
	`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttributes(rows)
}

func (s *AttributeService) GetByName(ctx context.Context, objectID int, name string) (*models.Attribute, error) {
	var a models.Attribute
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, object_id, name, value, created_on, updated_on
		FROM attributes WHERE object_id = $1 AND name = $2
	`, objectID, name).Scan(&a.ID, &a.ObjectID, &a.Name, &a.Value, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// GetMap returns all attributes of an object as a name-to-value map.
func (s *AttributeService) GetMap(ctx context.Context, objectID int) (map[string]string, error) {
	attrs, err := s.GetByObject(ctx, objectID)
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name] = a.Value
	}
	return m, nil
}

// SetMap upserts every entry of the map in one transaction. Names are
// upserted in sorted order to keep row-lock acquisition deterministic.
func (s *AttributeService) SetMap(ctx context.Context, objectID int, values map[string]string) ([]models.Attribute, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	inputs := make([]AttributeInput, 0, len(names))
	for _, name := range names {
		inputs = append(inputs, AttributeInput{ObjectID: objectID, Name: name, Value: values[name]})
	}
	return s.SetBulk(ctx, inputs)
}

func scanAttributes(rows pgx.Rows) ([]models.Attribute, error) {
	var attrs []models.Attribute
	for rows.Next() {
		var a models.Attribute
		if err := rows.Scan(&a.ID, &a.ObjectID, &a.Name, &a.Value, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}
