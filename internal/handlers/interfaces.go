package handlers

import (
	"context"
	"encoding/json"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/google/uuid"
)

// TypeServiceInterface defines the methods used by handlers from TypeService
type TypeServiceInterface interface {
	Create(ctx context.Context, typeName string, description *string) (*models.Type, error)
	CreateBulk(ctx context.Context, inputs []services.TypeInput) ([]models.Type, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Type, error)
	List(ctx context.Context, skip, limit int, name string) ([]models.Type, error)
	Update(ctx context.Context, id uuid.UUID, typeName, description *string) (*models.Type, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetObjects(ctx context.Context, typeID uuid.UUID) ([]models.Object, error)
}

// ObjectServiceInterface defines the methods used by handlers from ObjectService
type ObjectServiceInterface interface {
	Create(ctx context.Context, name string, typeID uuid.UUID, createdBy string) (*models.Object, error)
	CreateBulk(ctx context.Context, inputs []services.ObjectInput) ([]models.Object, error)
	GetByID(ctx context.Context, id int) (*models.Object, error)
	List(ctx context.Context, skip, limit int, typeID *uuid.UUID, name string) ([]models.Object, error)
	Update(ctx context.Context, id int, name *string, typeID *uuid.UUID, createdBy *string) (*models.Object, error)
	Delete(ctx context.Context, id int) error
}

// LinkServiceInterface defines the methods used by handlers from LinkService
type LinkServiceInterface interface {
	Create(ctx context.Context, parentID, childID int, rName string) (*models.Link, error)
	CreateBulk(ctx context.Context, inputs []services.LinkInput) ([]models.Link, error)
	GetByID(ctx context.Context, id int) (*models.Link, error)
	List(ctx context.Context, skip, limit int, rName string, parentID, childID *int) ([]models.Link, error)
	Update(ctx context.Context, id int, rName string) (*models.Link, error)
	Delete(ctx context.Context, id int) error
	GetChildren(ctx context.Context, objectID int) ([]models.Object, error)
	GetParents(ctx context.Context, objectID int) ([]models.Object, error)
	GetByRelationship(ctx context.Context, rName string) ([]models.Link, error)
}

// HierarchyServiceInterface defines the methods used by handlers from HierarchyService
type HierarchyServiceInterface interface {
	GetHierarchy(ctx context.Context, objectID, depth int) (*models.HierarchyNode, error)
}

// PermissionServiceInterface defines the methods used by handlers from PermissionService
type PermissionServiceInterface interface {
	Create(ctx context.Context, objectID int, user, level string) (*models.Permission, error)
	CreateBulk(ctx context.Context, inputs []services.PermissionInput) ([]models.Permission, error)
	GetByID(ctx context.Context, id int) (*models.Permission, error)
	List(ctx context.Context, skip, limit int) ([]models.Permission, error)
	Update(ctx context.Context, id int, level string) (*models.Permission, error)
	Delete(ctx context.Context, id int) error
	GetByObject(ctx context.Context, objectID int) ([]models.Permission, error)
	GetByUser(ctx context.Context, user string) ([]models.Permission, error)
	Check(ctx context.Context, objectID int, user string) (*models.PermissionCheck, error)
}

// VersioningServiceInterface defines the methods used by handlers from VersioningService
type VersioningServiceInterface interface {
	Create(ctx context.Context, objectID, version int, snapshot json.RawMessage) (*models.Versioning, error)
	CreateNext(ctx context.Context, objectID int, snapshot json.RawMessage) (*models.Versioning, error)
	CreateBulk(ctx context.Context, inputs []services.VersioningInput) ([]models.Versioning, error)
	GetByID(ctx context.Context, id int) (*models.Versioning, error)
	List(ctx context.Context, skip, limit int) ([]models.Versioning, error)
	Update(ctx context.Context, id int, snapshot json.RawMessage) (*models.Versioning, error)
	Delete(ctx context.Context, id int) error
	GetByObject(ctx context.Context, objectID int) ([]models.Versioning, error)
	GetLatest(ctx context.Context, objectID int) (*models.Versioning, error)
	GetByVersion(ctx context.Context, objectID, version int) (*models.Versioning, error)
}

// AttributeServiceInterface defines the methods used by handlers from AttributeService
type AttributeServiceInterface interface {
	Set(ctx context.Context, objectID int, name, value string) (*models.Attribute, error)
	SetBulk(ctx context.Context, inputs []services.AttributeInput) ([]models.Attribute, error)
	GetByID(ctx context.Context, id int) (*models.Attribute, error)
	List(ctx context.Context, skip, limit int) ([]models.Attribute, error)
	Update(ctx context.Context, id int, value string) (*models.Attribute, error)
	Delete(ctx context.Context, id int) error
	GetByObject(ctx context.Context, objectID int) ([]models.Attribute, error)
	GetByName(ctx context.Context, objectID int, name string) (*models.Attribute, error)
	GetMap(ctx context.Context, objectID int) (map[string]string, error)
	SetMap(ctx context.Context, objectID int, values map[string]string) ([]models.Attribute, error)
}
