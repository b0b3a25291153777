package services

import (
	"context"
	"errors"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// DefaultMaxDepth bounds hierarchy expansion when the caller gives no
// explicit depth.
const DefaultMaxDepth = 100

type HierarchyService struct {
	db *database.DB
}

func NewHierarchyService(db *database.DB) *HierarchyService {
	return &HierarchyService{db: db}
}

// GetHierarchy expands the child tree rooted at objectID. Links may form
// cycles, so every expanded object is tracked; a revisited object is emitted
// once more as a leaf with Cycle set and is not expanded again. depth <= 0
// means DefaultMaxDepth.
func (s *HierarchyService) GetHierarchy(ctx context.Context, objectID, depth int) (*models.HierarchyNode, error) {
	if depth <= 0 || depth > DefaultMaxDepth {
		depth = DefaultMaxDepth
	}

	root, err := s.getObject(ctx, objectID)
	if err != nil {
		return nil, err
	}

	node := &models.HierarchyNode{Object: *root}
	visited := map[int]bool{objectID: true}
	if err := s.expand(ctx, node, visited, depth); err != nil {
		return nil, err
	}
	return node, nil
}

func (s *HierarchyService) expand(ctx context.Context, node *models.HierarchyNode, visited map[int]bool, depth int) error {
	if depth == 0 {
		return nil
	}

	children, err := s.childEdges(ctx, node.Object.ID)
	if err != nil {
		return err
	}

	for _, child := range children {
		if visited[child.Object.ID] {
			child.Cycle = true
			node.Children = append(node.Children, child)
			continue
		}
		visited[child.Object.ID] = true

		if err := s.expand(ctx, &child, visited, depth-1); err != nil {
			return err
		}
		node.Children = append(node.Children, child)
	}
	return nil
}

func (s *HierarchyService) childEdges(ctx context.Context, objectID int) ([]models.HierarchyNode, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT l.r_name, o.id, o.name, o.version, o.type_id, o.created_on, o.created_by
		FROM link l JOIN object o ON l.child_id = o.id
		WHERE l.parent_id = $1
		ORDER BY l.id
	`, objectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []models.HierarchyNode
	for rows.Next() {
		var e models.HierarchyNode
		if err := rows.Scan(&e.RName, &e.Object.ID, &e.Object.Name, &e.Object.Version,
			&e.Object.TypeID, &e.Object.CreatedOn, &e.Object.CreatedBy); err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

func (s *HierarchyService) getObject(ctx context.Context, id int) (*models.Object, error) {
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
