package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/dormatory/dormatory-api/internal/database"
	"github.com/dormatory/dormatory-api/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateType creates a test type with default values
func (f *Fixtures) CreateType(t *testing.T, opts ...TypeOption) *models.Type {
	t.Helper()
	f.counter++

	typ := &models.Type{
		TypeName: fmt.Sprintf("TestType%d", f.counter),
	}

	for _, opt := range opts {
		opt(typ)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO type (type_name, description)
		VALUES ($1, $2)
		RETURNING id, type_name, description
	`, typ.TypeName, typ.Description).Scan(&typ.ID, &typ.TypeName, &typ.Description)
	if err != nil {
		t.Fatalf("failed to create type: %v", err)
	}

	return typ
}

// TypeOption configures a test type
type TypeOption func(*models.Type)

// WithTypeName sets the type's name
func WithTypeName(name string) TypeOption {
	return func(typ *models.Type) {
		typ.TypeName = name
	}
}

// WithDescription sets the type's description
func WithDescription(description string) TypeOption {
	return func(typ *models.Type) {
		typ.Description = &description
	}
}

// CreateObject creates a test object of the given type
func (f *Fixtures) CreateObject(t *testing.T, typ *models.Type, opts ...ObjectOption) *models.Object {
	t.Helper()
	f.counter++

	obj := &models.Object{
		Name:      fmt.Sprintf("Test Object %d", f.counter),
		Version:   1,
		TypeID:    typ.ID,
		CreatedBy: "fixtures",
	}

	for _, opt := range opts {
		opt(obj)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO object (name, version, type_id, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, version, type_id, created_on, created_by
	`, obj.Name, obj.Version, obj.TypeID, obj.CreatedBy).Scan(
		&obj.ID, &obj.Name, &obj.Version, &obj.TypeID, &obj.CreatedOn, &obj.CreatedBy,
	)
	if err != nil {
		t.Fatalf("failed to create object: %v", err)
	}

	return obj
}

// ObjectOption configures a test object
type ObjectOption func(*models.Object)

// WithObjectName sets the object's name
func WithObjectName(name string) ObjectOption {
	return func(o *models.Object) {
		o.Name = name
	}
}

// WithCreatedBy sets the object's creator
func WithCreatedBy(user string) ObjectOption {
	return func(o *models.Object) {
		o.CreatedBy = user
	}
}

// CreateLink links a parent object to a child object under a relationship name
func (f *Fixtures) CreateLink(t *testing.T, parent, child *models.Object, rName string) *models.Link {
	t.Helper()

	link := &models.Link{
		ParentID: parent.ID,
		ChildID:  child.ID,
		RName:    rName,
	}

	ctx := context.Background()

	var parentType, childType string
	err := f.db.Pool.QueryRow(ctx, `
		SELECT t.type_name FROM object o JOIN type t ON t.id = o.type_id WHERE o.id = $1
	`, parent.ID).Scan(&parentType)
	if err != nil {
		t.Fatalf("failed to resolve parent type: %v", err)
	}
	err = f.db.Pool.QueryRow(ctx, `
		SELECT t.type_name FROM object o JOIN type t ON t.id = o.type_id WHERE o.id = $1
	`, child.ID).Scan(&childType)
	if err != nil {
		t.Fatalf("failed to resolve child type: %v", err)
	}

	err = f.db.Pool.QueryRow(ctx, `
		INSERT INTO link (parent_id, parent_type, child_type, r_name, child_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, parent_id, parent_type, child_type, r_name, child_id
	`, parent.ID, parentType, childType, rName, child.ID).Scan(
		&link.ID, &link.ParentID, &link.ParentType, &link.ChildType, &link.RName, &link.ChildID,
	)
	if err != nil {
		t.Fatalf("failed to create link: %v", err)
	}

	return link
}

// GrantPermission grants a permission level on an object to a user
func (f *Fixtures) GrantPermission(t *testing.T, object *models.Object, user, level string) *models.Permission {
	t.Helper()

	perm := &models.Permission{
		ObjectID:        object.ID,
		User:            user,
		PermissionLevel: level,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO permissions (object_id, "user", permission_level)
		VALUES ($1, $2, $3)
		ON CONFLICT (object_id, "user") DO UPDATE SET permission_level = EXCLUDED.permission_level
		RETURNING id, object_id, "user", permission_level
	`, perm.ObjectID, perm.User, perm.PermissionLevel).Scan(
		&perm.ID, &perm.ObjectID, &perm.User, &perm.PermissionLevel,
	)
	if err != nil {
		t.Fatalf("failed to grant permission: %v", err)
	}

	return perm
}

// CreateVersion records a version snapshot for an object
func (f *Fixtures) CreateVersion(t *testing.T, object *models.Object, version int, snapshot json.RawMessage) *models.Versioning {
	t.Helper()

	if snapshot == nil {
		snapshot = json.RawMessage(`{}`)
	}

	rec := &models.Versioning{
		ObjectID: object.ID,
		Version:  version,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO versioning (object_id, version, snapshot)
		VALUES ($1, $2, $3)
		RETURNING id, object_id, version, snapshot, created_at
	`, rec.ObjectID, rec.Version, snapshot).Scan(
		&rec.ID, &rec.ObjectID, &rec.Version, &rec.Snapshot, &rec.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create version: %v", err)
	}

	return rec
}

// SetAttribute upserts an attribute on an object
func (f *Fixtures) SetAttribute(t *testing.T, object *models.Object, name, value string) *models.Attribute {
	t.Helper()

	attr := &models.Attribute{
		ObjectID: object.ID,
		Name:     name,
		Value:    value,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO attributes (object_id, name, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (object_id, name) DO UPDATE SET value = EXCLUDED.value, updated_on = NOW()
		RETURNING id, object_id, name, value, created_on, updated_on
	`, attr.ObjectID, attr.Name, attr.Value).Scan(
		&attr.ID, &attr.ObjectID, &attr.Name, &attr.Value, &attr.CreatedOn, &attr.UpdatedOn,
	)
	if err != nil {
		t.Fatalf("failed to set attribute: %v", err)
	}

	return attr
}
