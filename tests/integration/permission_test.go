package integration

import (
	"context"
	"testing"

	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionService_Integration_Create_RegrantReplacesLevel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPermissionService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)

	first, err := svc.Create(ctx, obj.ID, "alice", "read")
	require.NoError(t, err)

	second, err := svc.Create(ctx, obj.ID, "alice", "write")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "write", second.PermissionLevel)

	perms, err := svc.GetByObject(ctx, obj.ID)
	require.NoError(t, err)
	require.Len(t, perms, 1)
	assert.Equal(t, "write", perms[0].PermissionLevel)
}

func TestPermissionService_Integration_Check(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPermissionService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.GrantPermission(t, obj, "alice", "admin")

	granted, err := svc.Check(ctx, obj.ID, "alice")
	require.NoError(t, err)
	assert.True(t, granted.Granted)
	assert.Equal(t, "admin", granted.Level)

	denied, err := svc.Check(ctx, obj.ID, "bob")
	require.NoError(t, err)
	assert.False(t, denied.Granted)
	assert.Empty(t, denied.Level)
}

func TestPermissionService_Integration_GetByUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPermissionService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	objA := fixtures.CreateObject(t, typ)
	objB := fixtures.CreateObject(t, typ)
	fixtures.GrantPermission(t, objA, "alice", "read")
	fixtures.GrantPermission(t, objB, "alice", "write")
	fixtures.GrantPermission(t, objB, "bob", "read")

	perms, err := svc.GetByUser(ctx, "alice")

	require.NoError(t, err)
	assert.Len(t, perms, 2)
}
