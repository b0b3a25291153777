package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersioningService_Integration_CreateNext_Sequential(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewVersioningService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)

	for i := 1; i <= 5; i++ {
		rec, err := svc.CreateNext(ctx, obj.ID, json.RawMessage(`{}`))
		require.NoError(t, err)
		assert.Equal(t, i, rec.Version)
	}

	records, err := svc.GetByObject(ctx, obj.ID)
	require.NoError(t, err)
	require.Len(t, records, 5)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.Version)
	}
}

func TestVersioningService_Integration_CreateNext_UnknownObject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewVersioningService(tdb.DB)
	ctx := context.Background()

	_, err := svc.CreateNext(ctx, 99999, nil)

	assert.ErrorIs(t, err, services.ErrUnknownReference)
}

func TestVersioningService_Integration_Create_DuplicateVersion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewVersioningService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.CreateVersion(t, obj, 1, nil)

	_, err := svc.Create(ctx, obj.ID, 1, nil)

	assert.ErrorIs(t, err, services.ErrVersionConflict)
}

func TestVersioningService_Integration_GetLatest(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewVersioningService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.CreateVersion(t, obj, 1, json.RawMessage(`{"state": "draft"}`))
	fixtures.CreateVersion(t, obj, 2, json.RawMessage(`{"state": "review"}`))
	fixtures.CreateVersion(t, obj, 3, json.RawMessage(`{"state": "final"}`))

	latest, err := svc.GetLatest(ctx, obj.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, latest.Version)
	assert.JSONEq(t, `{"state": "final"}`, string(latest.Snapshot))
}

func TestVersioningService_Integration_GetLatest_NoVersions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewVersioningService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)

	_, err := svc.GetLatest(ctx, obj.ID)

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestVersioningService_Integration_GetByVersion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewVersioningService(tdb.DB)
	ctx := context.Background()

	typ := fixtures.CreateType(t)
	obj := fixtures.CreateObject(t, typ)
	fixtures.CreateVersion(t, obj, 1, json.RawMessage(`{"state": "draft"}`))
	fixtures.CreateVersion(t, obj, 2, json.RawMessage(`{"state": "final"}`))

	rec, err := svc.GetByVersion(ctx, obj.ID, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, rec.Version)
	assert.JSONEq(t, `{"state": "draft"}`, string(rec.Snapshot))
}
