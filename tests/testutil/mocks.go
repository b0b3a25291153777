package testutil

import (
	"context"
	"encoding/json"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTypeService mocks the TypeService
type MockTypeService struct {
	mock.Mock
}

func (m *MockTypeService) Create(ctx context.Context, typeName string, description *string) (*models.Type, error) {
	args := m.Called(ctx, typeName, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Type), args.Error(1)
}

func (m *MockTypeService) CreateBulk(ctx context.Context, inputs []services.TypeInput) ([]models.Type, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Type), args.Error(1)
}

func (m *MockTypeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Type, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Type), args.Error(1)
}

func (m *MockTypeService) List(ctx context.Context, skip, limit int, name string) ([]models.Type, error) {
	args := m.Called(ctx, skip, limit, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Type), args.Error(1)
}

func (m *MockTypeService) Update(ctx context.Context, id uuid.UUID, typeName, description *string) (*models.Type, error) {
	args := m.Called(ctx, id, typeName, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Type), args.Error(1)
}

func (m *MockTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTypeService) GetObjects(ctx context.Context, typeID uuid.UUID) ([]models.Object, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Object), args.Error(1)
}

// MockObjectService mocks the ObjectService
type MockObjectService struct {
	mock.Mock
}

func (m *MockObjectService) Create(ctx context.Context, name string, typeID uuid.UUID, createdBy string) (*models.Object, error) {
	args := m.Called(ctx, name, typeID, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Object), args.Error(1)
}

func (m *MockObjectService) CreateBulk(ctx context.Context, inputs []services.ObjectInput) ([]models.Object, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Object), args.Error(1)
}

func (m *MockObjectService) GetByID(ctx context.Context, id int) (*models.Object, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Object), args.Error(1)
}

func (m *MockObjectService) List(ctx context.Context, skip, limit int, typeID *uuid.UUID, name string) ([]models.Object, error) {
	args := m.Called(ctx, skip, limit, typeID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Object), args.Error(1)
}

func (m *MockObjectService) Update(ctx context.Context, id int, name *string, typeID *uuid.UUID, createdBy *string) (*models.Object, error) {
	args := m.Called(ctx, id, name, typeID, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Object), args.Error(1)
}

func (m *MockObjectService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLinkService mocks the LinkService
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) Create(ctx context.Context, parentID, childID int, rName string) (*models.Link, error) {
	args := m.Called(ctx, parentID, childID, rName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Link), args.Error(1)
}

func (m *MockLinkService) CreateBulk(ctx context.Context, inputs []services.LinkInput) ([]models.Link, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Link), args.Error(1)
}

func (m *MockLinkService) GetByID(ctx context.Context, id int) (*models.Link, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Link), args.Error(1)
}

func (m *MockLinkService) List(ctx context.Context, skip, limit int, rName string, parentID, childID *int) ([]models.Link, error) {
	args := m.Called(ctx, skip, limit, rName, parentID, childID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Link), args.Error(1)
}

func (m *MockLinkService) Update(ctx context.Context, id int, rName string) (*models.Link, error) {
	args := m.Called(ctx, id, rName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Link), args.Error(1)
}

func (m *MockLinkService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLinkService) GetChildren(ctx context.Context, objectID int) ([]models.Object, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Object), args.Error(1)
}

func (m *MockLinkService) GetParents(ctx context.Context, objectID int) ([]models.Object, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Object), args.Error(1)
}

func (m *MockLinkService) GetByRelationship(ctx context.Context, rName string) ([]models.Link, error) {
	args := m.Called(ctx, rName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Link), args.Error(1)
}

// MockHierarchyService mocks the HierarchyService
type MockHierarchyService struct {
	mock.Mock
}

func (m *MockHierarchyService) GetHierarchy(ctx context.Context, objectID, depth int) (*models.HierarchyNode, error) {
	args := m.Called(ctx, objectID, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HierarchyNode), args.Error(1)
}

// MockPermissionService mocks the PermissionService
type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) Create(ctx context.Context, objectID int, user, level string) (*models.Permission, error) {
	args := m.Called(ctx, objectID, user, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permission), args.Error(1)
}

func (m *MockPermissionService) CreateBulk(ctx context.Context, inputs []services.PermissionInput) ([]models.Permission, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionService) GetByID(ctx context.Context, id int) (*models.Permission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permission), args.Error(1)
}

func (m *MockPermissionService) List(ctx context.Context, skip, limit int) ([]models.Permission, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionService) Update(ctx context.Context, id int, level string) (*models.Permission, error) {
	args := m.Called(ctx, id, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Permission), args.Error(1)
}

func (m *MockPermissionService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPermissionService) GetByObject(ctx context.Context, objectID int) ([]models.Permission, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionService) GetByUser(ctx context.Context, user string) ([]models.Permission, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Permission), args.Error(1)
}

func (m *MockPermissionService) Check(ctx context.Context, objectID int, user string) (*models.PermissionCheck, error) {
	args := m.Called(ctx, objectID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PermissionCheck), args.Error(1)
}

// MockVersioningService mocks the VersioningService
type MockVersioningService struct {
	mock.Mock
}

func (m *MockVersioningService) Create(ctx context.Context, objectID, version int, snapshot json.RawMessage) (*models.Versioning, error) {
	args := m.Called(ctx, objectID, version, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Versioning), args.Error(1)
}

func (m *MockVersioningService) CreateNext(ctx context.Context, objectID int, snapshot json.RawMessage) (*models.Versioning, error) {
	args := m.Called(ctx, objectID, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Versioning), args.Error(1)
}

func (m *MockVersioningService) CreateBulk(ctx context.Context, inputs []services.VersioningInput) ([]models.Versioning, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Versioning), args.Error(1)
}

func (m *MockVersioningService) GetByID(ctx context.Context, id int) (*models.Versioning, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Versioning), args.Error(1)
}

func (m *MockVersioningService) List(ctx context.Context, skip, limit int) ([]models.Versioning, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Versioning), args.Error(1)
}

func (m *MockVersioningService) Update(ctx context.Context, id int, snapshot json.RawMessage) (*models.Versioning, error) {
	args := m.Called(ctx, id, snapshot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Versioning), args.Error(1)
}

func (m *MockVersioningService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVersioningService) GetByObject(ctx context.Context, objectID int) ([]models.Versioning, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Versioning), args.Error(1)
}

func (m *MockVersioningService) GetLatest(ctx context.Context, objectID int) (*models.Versioning, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Versioning), args.Error(1)
}

func (m *MockVersioningService) GetByVersion(ctx context.Context, objectID, version int) (*models.Versioning, error) {
	args := m.Called(ctx, objectID, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Versioning), args.Error(1)
}

// MockAttributeService mocks the AttributeService
type MockAttributeService struct {
	mock.Mock
}

func (m *MockAttributeService) Set(ctx context.Context, objectID int, name, value string) (*models.Attribute, error) {
	args := m.Called(ctx, objectID, name, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attribute), args.Error(1)
}

func (m *MockAttributeService) SetBulk(ctx context.Context, inputs []services.AttributeInput) ([]models.Attribute, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attribute), args.Error(1)
}

func (m *MockAttributeService) GetByID(ctx context.Context, id int) (*models.Attribute, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attribute), args.Error(1)
}

func (m *MockAttributeService) List(ctx context.Context, skip, limit int) ([]models.Attribute, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attribute), args.Error(1)
}

func (m *MockAttributeService) Update(ctx context.Context, id int, value string) (*models.Attribute, error) {
	args := m.Called(ctx, id, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attribute), args.Error(1)
}

func (m *MockAttributeService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAttributeService) GetByObject(ctx context.Context, objectID int) ([]models.Attribute, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attribute), args.Error(1)
}

func (m *MockAttributeService) GetByName(ctx context.Context, objectID int, name string) (*models.Attribute, error) {
	args := m.Called(ctx, objectID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attribute), args.Error(1)
}

func (m *MockAttributeService) GetMap(ctx context.Context, objectID int) (map[string]string, error) {
	args := m.Called(ctx, objectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockAttributeService) SetMap(ctx context.Context, objectID int, values map[string]string) ([]models.Attribute, error) {
	args := m.Called(ctx, objectID, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attribute), args.Error(1)
}
