package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type PermissionService struct {
	db *database.DB
}

func NewPermissionService(db *database.DB) *PermissionService {
	return &PermissionService{db: db}
}

// PermissionInput carries the fields of one grant for bulk creation.
type PermissionInput struct {
	ObjectID        int
	User            string
	PermissionLevel string
}

// Create grants a permission level to a user on an object. Re-granting for
// the same (object, user) pair overwrites the level.
func (s *PermissionService) Create(ctx context.Context, objectID int, user, level string) (*models.Permission, error) {
	var p models.Permission
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO permissions (object_id, "user", permission_level)
		VALUES ($1, $2, $3)
		ON CONFLICT (object_id, "user") DO UPDATE SET permission_level = EXCLUDED.permission_level
		RETURNING id, object_id, "user", permission_level
	`, objectID, user, level).Scan(&p.ID, &p.ObjectID, &p.User, &p.PermissionLevel)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}
	return &p, nil
}

func (s *PermissionService) CreateBulk(ctx context.Context, inputs []PermissionInput) ([]models.Permission, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	perms := make([]models.Permission, 0, len(inputs))
	for _, in := range inputs {
		var p models.Permission
		err := tx.QueryRow(ctx, `
			INSERT INTO permissions (object_id, "user", permission_level)
			VALUES ($1, $2, $3)
			ON CONFLICT (object_id, "user") DO UPDATE SET permission_level = EXCLUDED.permission_level
			RETURNING id, object_id, "user", permission_level
		`, in.ObjectID, in.User, in.PermissionLevel).Scan(&p.ID, &p.ObjectID, &p.User, &p.PermissionLevel)
		if err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				return nil, ErrUnknownReference
			}
			return nil, err
		}
		perms = append(perms, p)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return perms, nil
}

func (s *PermissionService) GetByID(ctx context.Context, id int) (*models.Permission, error) {
	var p models.Permission
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, object_id, "user", permission_level FROM permissions WHERE id = $1
	`, id).Scan(&p.ID, &p.ObjectID, &p.User, &p.PermissionLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PermissionService) List(ctx context.Context, skip, limit int) ([]models.Permission, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, "user", permission_level FROM permissions
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPermissions(rows)
}

func (s *PermissionService) Update(ctx context.Context, id int, level string) (*models.Permission, error) {
	var p models.Permission
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE permissions SET permission_level = $1
		WHERE id = $2
		RETURNING id, object_id, "user", permission_level
	`, level, id).Scan(&p.ID, &p.ObjectID, &p.User, &p.PermissionLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *PermissionService) Delete(ctx context.Context, id int) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PermissionService) GetByObject(ctx context.Context, objectID int) ([]models.Permission, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, "user", permission_level FROM permissions
		WHERE object_id = $1
		ORDER BY id
	`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPermissions(rows)
}

func (s *PermissionService) GetByUser(ctx context.Context, user string) ([]models.Permission, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, "user", permission_level FROM permissions
		WHERE "user" = $1
		ORDER BY id
	`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPermissions(rows)
}

// Check looks up the permission level for an (object, user) pair. A missing
// grant is a valid answer, not an error.
func (s *PermissionService) Check(ctx context.Context, objectID int, user string) (*models.PermissionCheck, error) {
	check := &models.PermissionCheck{ObjectID: objectID, User: user}
	var level string
	err := s.db.Pool.QueryRow(ctx, `
		SELECT permission_level FROM permissions
		WHERE object_id = $1 AND "user" = $2
	`, objectID, user).Scan(&level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return check, nil
		}
		return nil, err
	}
	check.Granted = true
	check.Level = level
	return check, nil
}

func scanPermissions(rows pgx.Rows) ([]models.Permission, error) {
	var perms []models.Permission
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.ObjectID, &p.User, &p.PermissionLevel); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}
