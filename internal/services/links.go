package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/jackc/pgx/v5"
)

type LinkService struct {
	db *database.DB
}

func NewLinkService(db *database.DB) *LinkService {
	return &LinkService{db: db}
}

// LinkInput carries the fields of one link for bulk creation.
type LinkInput struct {
	ParentID int
	ChildID  int
	RName    string
}

func (s *LinkService) Create(ctx context.Context, parentID, childID int, rName string) (*models.Link, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	link, err := insertLink(ctx, tx, parentID, childID, rName)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return link, nil
}

func (s *LinkService) CreateBulk(ctx context.Context, inputs []LinkInput) ([]models.Link, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	links := make([]models.Link, 0, len(inputs))
	for _, in := range inputs {
		link, err := insertLink(ctx, tx, in.ParentID, in.ChildID, in.RName)
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return links, nil
}

// insertLink resolves the type names of both endpoints and inserts the edge
// in the same transaction, so a link never persists with a missing endpoint.
func insertLink(ctx context.Context, tx pgx.Tx, parentID, childID int, rName string) (*models.Link, error) {
	var parentType, childType string
	err := tx.QueryRow(ctx, `
		SELECT t.type_name FROM object o JOIN type t ON o.type_id = t.id
		WHERE o.id = $1
	`, parentID).Scan(&parentType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		SELECT t.type_name FROM object o JOIN type t ON o.type_id = t.id
		WHERE o.id = $1
	`, childID).Scan(&childType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}

	var l models.Link
	err = tx.QueryRow(ctx, `
		INSERT INTO link (parent_id, parent_type, child_type, r_name, child_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, parent_id, parent_type, child_type, r_name, child_id
	`, parentID, parentType, childType, rName, childID).Scan(
		&l.ID, &l.ParentID, &l.ParentType, &l.ChildType, &l.RName, &l.ChildID,
	)
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrUnknownReference
		}
		return nil, err
	}
	return &l, nil
}

func (s *LinkService) GetByID(ctx context.Context, id int) (*models.Link, error) {
	var l models.Link
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, parent_id, parent_type, child_type, r_name, child_id
		FROM link WHERE id = $1
	`, id).Scan(&l.ID, &l.ParentID, &l.ParentType, &l.ChildType, &l.RName, &l.ChildID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *LinkService) List(ctx context.Context, skip, limit int, rName string, parentID, childID *int) ([]models.Link, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, parent_id, parent_type, child_type, r_name, child_id
		FROM link
		WHERE ($1 = '' OR r_name = $1)
		  AND ($2::int IS NULL OR parent_id = $2)
		  AND ($3::int IS NULL OR child_id = $3)
		ORDER BY id
		OFFSET $4 LIMIT $5
	`, rName, parentID, childID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLinks(rows)
}

// Update changes the relationship name of an existing link. Endpoints are
// immutable; delete and recreate to rewire an edge.
func (s *LinkService) Update(ctx context.Context, id int, rName string) (*models.Link, error) {
	var l models.Link
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE link SET r_name = $1
		WHERE id = $2
		RETURNING id, parent_id, parent_type, child_type, r_name, child_id
	`, rName, id).Scan(&l.ID, &l.ParentID, &l.ParentType, &l.ChildType, &l.RName, &l.ChildID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *LinkService) Delete(ctx context.Context, id int) error {
	result, err := s.db.Pool.Exec(ctx, `DELETE FROM link WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetChildren returns the objects at the child end of links whose parent is
// objectID, in link insertion order.
func (s *LinkService) GetChildren(ctx context.Context, objectID int) ([]models.Object, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT o.id, o.name, o.version, o.type_id, o.created_on, o.created_by
		FROM link l JOIN object o ON l.child_id = o.id
		WHERE l.parent_id = $1
		ORDER BY l.id
	`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanObjects(rows)
}

func (s *LinkService) GetParents(ctx context.Context, objectID int) ([]models.Object, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT o.id, o.name, o.version, o.type_id, o.created_on, o.created_by
		FROM link l JOIN object o ON l.parent_id = o.id
		WHERE l.child_id = $1
		ORDER BY l.id
	`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanObjects(rows)
}

func (s *LinkService) GetByRelationship(ctx context.Context, rName string) ([]models.Link, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, parent_id, parent_type, child_type, r_name, child_id
		FROM link WHERE r_name = $1
		ORDER BY id
	`, rName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLinks(rows)
}

func scanLinks(rows pgx.Rows) ([]models.Link, error) {
	var links []models.Link
	for rows.Next() {
		var l models.Link
		if err := rows.Scan(&l.ID, &l.ParentID, &l.ParentType, &l.ChildType, &l.RName, &l.ChildID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func scanObjects(rows pgx.Rows) ([]models.Object, error) {
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
