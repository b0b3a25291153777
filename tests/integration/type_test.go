package integration

import (
	"context"
	"testing"

	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeService_Integration_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewTypeService(tdb.DB)
	ctx := context.Background()

	desc := "A container for documents"
	typ, err := svc.Create(ctx, "Folder", &desc)

	require.NoError(t, err)
	assert.NotEmpty(t, typ.ID)
	assert.Equal(t, "Folder", typ.TypeName)
	require.NotNil(t, typ.Description)
	assert.Equal(t, desc, *typ.Description)
}

func TestTypeService_Integration_Create_DuplicateName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTypeService(tdb.DB)
	ctx := context.Background()

	fixtures.CreateType(t, testutil.WithTypeName("Folder"))

	_, err := svc.Create(ctx, "Folder", nil)

	assert.ErrorIs(t, err, services.ErrDuplicateName)
}

func TestTypeService_Integration_List_FilterByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTypeService(tdb.DB)
	ctx := context.Background()

	fixtures.CreateType(t, testutil.WithTypeName("Folder"))
	fixtures.CreateType(t, testutil.WithTypeName("Document"))
	fixtures.CreateType(t, testutil.WithTypeName("DocumentTemplate"))

	types, err := svc.List(ctx, 0, 100, "Document")

	require.NoError(t, err)
	assert.Len(t, types, 2)
}

func TestTypeService_Integration_Delete_InUse(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTypeService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	fixtures.CreateObject(t, typ)

	err := svc.Delete(ctx, typ.ID)

	assert.ErrorIs(t, err, services.ErrTypeInUse)

	// Still listed after the failed delete
	got, err := svc.GetByID(ctx, typ.ID)
	require.NoError(t, err)
	assert.Equal(t, typ.TypeName, got.TypeName)
}

func TestTypeService_Integration_GetObjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTypeService(tdb.DB)
	ctx := context.Background()

	folder := fixtures.CreateType(t, testutil.WithTypeName("Folder"))
	document := fixtures.CreateType(t, testutil.WithTypeName("Document"))
	fixtures.CreateObject(t, folder)
	fixtures.CreateObject(t, folder)
	fixtures.CreateObject(t, document)

	objects, err := svc.GetObjects(ctx, folder.ID)

	require.NoError(t, err)
	assert.Len(t, objects, 2)
	for _, obj := range objects {
		assert.Equal(t, folder.ID, obj.TypeID)
	}
}
