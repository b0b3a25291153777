package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type VersioningService struct {
	db *database.DB
}

func NewVersioningService(db *database.DB) *VersioningService {
	return &VersioningService{db: db}
}

// VersioningInput carries the fields of one record for bulk creation.
type VersioningInput struct {
	ObjectID int
	Version  int
	Snapshot json.RawMessage
}

// Create inserts a snapshot with an explicit version number. Callers that
// want the next number assigned for them use CreateNext.
func (s *VersioningService) Create(ctx context.Context, objectID, version int, snapshot json.RawMessage) (*models.Versioning, error) {
	if snapshot == nil {
		snapshot = json.RawMessage("{}")
	}

	var v models.Versioning
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO versioning (object_id, version, snapshot)
		VALUES ($1, $2, $3)
		RETURNING id, object_id, version, snapshot, created_at
	`, objectID, version, snapshot).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	return &v, nil
}

// CreateNext assigns version = max(version)+1 for the object atomically.
// The object row is locked for the duration of the transaction so two
// concurrent writers cannot compute the same number; if the unique
// constraint still fires the attempt is retried once before giving up with
// ErrVersionConflict.
func (s *VersioningService) CreateNext(ctx context.Context, objectID int, snapshot json.RawMessage) (*models.Versioning, error) {
	if snapshot == nil {
		snapshot = json.RawMessage("{}")
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		v, err := s.createNextOnce(ctx, objectID, snapshot)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *VersioningService) createNextOnce(ctx context.Context, objectID int, snapshot json.RawMessage) (*models.Versioning, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int
	err = tx.QueryRow(ctx, `SELECT id FROM object WHERE id = $1 FOR UPDATE`, objectID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	var v models.Versioning
	err = tx.QueryRow(ctx, `
		INSERT INTO versioning (object_id, version, snapshot)
		SELECT $1, COALESCE(MAX(version), 0) + 1, $2 FROM versioning WHERE object_id = $1
		RETURNING id, object_id, version, snapshot, created_at
	`, objectID, snapshot).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &v, nil
}

func (s *VersioningService) CreateBulk(ctx context.Context, inputs []VersioningInput) ([]models.Versioning, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	records := make([]models.Versioning, 0, len(inputs))
	for _, in := range inputs {
		snapshot := in.Snapshot
		if snapshot == nil {
			snapshot = json.RawMessage("{}")
		}
		var v models.Versioning
		err := tx.QueryRow(ctx, `
			INSERT INTO versioning (object_id, version, snapshot)
			VALUES ($1, $2, $3)
			RETURNING id, object_id, version, snapshot, created_at
		`, in.ObjectID, in.Version, snapshot).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
		if err != nil {
			if isPgError(err, pgForeignKeyViolation) {
				return nil, ErrUnknownReference
			}
			if isPgError(err, pgUniqueViolation) {
				return nil, ErrVersionConflict
			}
			return nil, err
		}
		records = append(records, v)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return records, nil
}

func (s *VersioningService) GetByID(ctx context.Context, id int) (*models.Versioning, error) {
	var v models.Versioning
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, object_id, version, snapshot, created_at
		FROM versioning WHERE id = $1
	`, id).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *VersioningService) List(ctx context.Context, skip, limit int) ([]models.Versioning, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, version, snapshot, created_at
		FROM versioning
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVersioning(rows)
}

// Update replaces the snapshot payload of a record. Version numbers are
// immutable once assigned.
func (s *VersioningService) Update(ctx context.Context, id int, snapshot json.RawMessage) (*models.Versioning, error) {
	var v models.Versioning
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE versioning SET snapshot = $1
		WHERE id = $2
		RETURNING id, object_id, version, snapshot, created_at
	`, snapshot, id).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *VersioningService) Delete(ctx context.Context, id int) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM versioning WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *VersioningService) GetByObject(ctx context.Context, objectID int) ([]models.Versioning, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, object_id, version, snapshot, created_at
		FROM versioning WHERE object_id = $1
		ORDER BY version
	`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVersioning(rows)
}

func (s *VersioningService) GetLatest(ctx context.Context, objectID int) (*models.Versioning, error) {
	var v models.Versioning
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, object_id, version, snapshot, created_at
		FROM versioning WHERE object_id = $1
		ORDER BY version DESC
		LIMIT 1
	`, objectID).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *VersioningService) GetByVersion(ctx context.Context, objectID, version int) (*models.Versioning, error) {
	var v models.Versioning
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, object_id, version, snapshot, created_at
		FROM versioning WHERE object_id = $1 AND version = $2
	`, objectID, version).Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func scanVersioning(rows pgx.Rows) ([]models.Versioning, error) {
	var records []models.Versioning
	for rows.Next() {
		var v models.Versioning
		if err := rows.Scan(&v.ID, &v.ObjectID, &v.Version, &v.Snapshot, &v.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, v)
	}
	return records, rows.Err()
}
