package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/dormatory/dormatory-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAttributeTest(t *testing.T) (*testutil.MockAttributeService, http.Handler) {
	t.Helper()
	mockAttributeService := new(testutil.MockAttributeService)
	handler := NewAttributeHandler(mockAttributeService)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Post("/attributes", handler.Set)
	app.Get("/attributes/:attributeId", handler.Get)
	app.Get("/attributes/object/:objectId", handler.GetByObject)
	app.Get("/attributes/object/:objectId/name/:name", handler.GetByName)
	app.Get("/attributes/object/:objectId/attributes", handler.GetMap)
	app.Post("/attributes/object/:objectId/attributes", handler.SetMap)

	return mockAttributeService, app
}

func TestAttributeHandler_Set_Success(t *testing.T) {
	mockAttributeService, app := setupAttributeTest(t)

	now := time.Now()
	attr := &models.Attribute{ID: 3, ObjectID: 1, Name: "color", Value: "red", CreatedOn: now, UpdatedOn: now}
	mockAttributeService.On("Set", mock.Anything, 1, "color", "red").Return(attr, nil)

	body, _ := json.Marshal(dto.SetAttributeRequest{ObjectID: 1, Name: "color", Value: "red"})
	req := httptest.NewRequest(http.MethodPost, "/attributes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.AttributeResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "color", response.Name)
	assert.Equal(t, "red", response.Value)

	mockAttributeService.AssertExpectations(t)
}

func TestAttributeHandler_Set_MissingName(t *testing.T) {
	_, app := setupAttributeTest(t)

	body, _ := json.Marshal(dto.SetAttributeRequest{ObjectID: 1, Value: "red"})
	req := httptest.NewRequest(http.MethodPost, "/attributes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "object_id and name are required")
}

func TestAttributeHandler_Set_UnknownObject(t *testing.T) {
	mockAttributeService, app := setupAttributeTest(t)

	mockAttributeService.On("Set", mock.Anything, 99, "color", "red").
		Return(nil, services.ErrUnknownReference)

	body, _ := json.Marshal(dto.SetAttributeRequest{ObjectID: 99, Name: "color", Value: "red"})
	req := httptest.NewRequest(http.MethodPost, "/attributes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "object does not exist")

	mockAttributeService.AssertExpectations(t)
}

func TestAttributeHandler_GetMap_Success(t *testing.T) {
	mockAttributeService, app := setupAttributeTest(t)

	values := map[string]string{"color": "red", "size": "large"}
	mockAttributeService.On("GetMap", mock.Anything, 1).Return(values, nil)

	req := httptest.NewRequest(http.MethodGet, "/attributes/object/1/attributes", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, values, response)

	mockAttributeService.AssertExpectations(t)
}

func TestAttributeHandler_SetMap_Success(t *testing.T) {
	mockAttributeService, app := setupAttributeTest(t)

	values := map[string]string{"color": "red", "size": "large"}
	attrs := []models.Attribute{
		{ID: 3, ObjectID: 1, Name: "color", Value: "red"},
		{ID: 4, ObjectID: 1, Name: "size", Value: "large"},
	}
	mockAttributeService.On("SetMap", mock.Anything, 1, values).Return(attrs, nil)

	body, _ := json.Marshal(values)
	req := httptest.NewRequest(http.MethodPost, "/attributes/object/1/attributes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []dto.AttributeResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response, 2)

	mockAttributeService.AssertExpectations(t)
}

func TestAttributeHandler_SetMap_Empty(t *testing.T) {
	_, app := setupAttributeTest(t)

	body, _ := json.Marshal(map[string]string{})
	req := httptest.NewRequest(http.MethodPost, "/attributes/object/1/attributes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttributeHandler_GetByName_NotFound(t *testing.T) {
	mockAttributeService, app := setupAttributeTest(t)

	mockAttributeService.On("GetByName", mock.Anything, 1, "missing").
		Return(nil, services.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/attributes/object/1/name/missing", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockAttributeService.AssertExpectations(t)
}
