package integration

import (
	"context"
	"testing"

	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeService_Integration_Set_OverwritesExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAttributeService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)

	first, err := svc.Set(ctx, obj.ID, "color", "red")
	require.NoError(t, err)

	second, err := svc.Set(ctx, obj.ID, "color", "blue")
	require.NoError(t, err)

	// Same row, new value
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "blue", second.Value)

	attrs, err := svc.GetByObject(ctx, obj.ID)
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.Equal(t, "blue", attrs[0].Value)
}

func TestAttributeService_Integration_Set_UnknownObject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewAttributeService(tdb.DB)
	ctx := context.Background()

	_, err := svc.Set(ctx, 99999, "color", "red")

	assert.ErrorIs(t, err, services.ErrUnknownReference)
}

func TestAttributeService_Integration_GetMap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAttributeService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.SetAttribute(t, obj, "color", "red")
	fixtures.SetAttribute(t, obj, "size", "large")

	values, err := svc.GetMap(ctx, obj.ID)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"color": "red", "size": "large"}, values)
}

func TestAttributeService_Integration_SetMap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAttributeService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.SetAttribute(t, obj, "color", "red")

	attrs, err := svc.SetMap(ctx, obj.ID, map[string]string{
		"color": "blue",
		"size":  "large",
	})

	require.NoError(t, err)
	assert.Len(t, attrs, 2)

	values, err := svc.GetMap(ctx, obj.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"color": "blue", "size": "large"}, values)
}

func TestAttributeService_Integration_GetByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewAttributeService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.SetAttribute(t, obj, "color", "red")

	attr, err := svc.GetByName(ctx, obj.ID, "color")
	require.NoError(t, err)
	assert.Equal(t, "red", attr.Value)

	_, err = svc.GetByName(ctx, obj.ID, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
