package handlers

import (
	"context"
	"errors"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type TypeHandler struct {
	typeService TypeServiceInterface
}

func NewTypeHandler(typeService TypeServiceInterface) *TypeHandler {
	return &TypeHandler{typeService: typeService}
}

func (h *TypeHandler) Create(c *drift.Context) {
	var req dto.CreateTypeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.TypeName == "" {
		c.BadRequest("type_name is required")
		return
	}

	t, err := h.typeService.Create(context.Background(), req.TypeName, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			_ = c.JSON(409, map[string]string{"error": "type_name already exists"})
			return
		}
		c.InternalServerError("failed to create type")
		return
	}

	_ = c.JSON(201, typeResponse(t))
}

func (h *TypeHandler) CreateBulk(c *drift.Context) {
	var reqs []dto.CreateTypeRequest
	if err := c.BindJSON(&reqs); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(reqs) == 0 {
		c.BadRequest("at least one type is required")
		return
	}

	inputs := make([]services.TypeInput, len(reqs))
	for i, req := range reqs {
		if req.TypeName == "" {
			c.BadRequest("type_name is required")
			return
		}
		inputs[i] = services.TypeInput{TypeName: req.TypeName, Description: req.Description}
	}

	types, err := h.typeService.CreateBulk(context.Background(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			_ = c.JSON(409, map[string]string{"error": "type_name already exists"})
			return
		}
		c.InternalServerError("failed to create types")
		return
	}

	_ = c.JSON(201, typeResponses(types))
}

func (h *TypeHandler) Get(c *drift.Context) {
	typeID, err := uuid.Parse(c.Param("typeId"))
	if err != nil {
		c.BadRequest("invalid type id")
		return
	}

	t, err := h.typeService.GetByID(context.Background(), typeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("type not found")
			return
		}
		c.InternalServerError("failed to get type")
		return
	}

	_ = c.JSON(200, typeResponse(t))
}

func (h *TypeHandler) List(c *drift.Context) {
	skip, limit := pagination(c)
	name := c.QueryParam("name")

	types, err := h.typeService.List(context.Background(), skip, limit, name)
	if err != nil {
		c.InternalServerError("failed to list types")
		return
	}

	_ = c.JSON(200, typeResponses(types))
}

func (h *TypeHandler) Update(c *drift.Context) {
	typeID, err := uuid.Parse(c.Param("typeId"))
	if err != nil {
		c.BadRequest("invalid type id")
		return
	}

	var req dto.UpdateTypeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	t, err := h.typeService.Update(context.Background(), typeID, req.TypeName, req.Description)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("type not found")
			return
		}
		if errors.Is(err, services.ErrDuplicateName) {
			_ = c.JSON(409, map[string]string{"error": "type_name already exists"})
			return
		}
		if errors.Is(err, services.ErrNoFieldsToUpdate) {
			c.BadRequest("no fields to update")
			return
		}
		c.InternalServerError("failed to update type")
		return
	}

	_ = c.JSON(200, typeResponse(t))
}

func (h *TypeHandler) Delete(c *drift.Context) {
	typeID, err := uuid.Parse(c.Param("typeId"))
	if err != nil {
		c.BadRequest("invalid type id")
		return
	}

	if err := h.typeService.Delete(context.Background(), typeID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("type not found")
			return
		}
		if errors.Is(err, services.ErrTypeInUse) {
			_ = c.JSON(409, map[string]string{"error": "type is referenced by existing objects"})
			return
		}
		c.InternalServerError("failed to delete type")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "type deleted"})
}

func (h *TypeHandler) GetObjects(c *drift.Context) {
	typeID, err := uuid.Parse(c.Param("typeId"))
	if err != nil {
		c.BadRequest("invalid type id")
		return
	}

	objects, err := h.typeService.GetObjects(context.Background(), typeID)
	if err != nil {
		c.InternalServerError("failed to get objects")
		return
	}

	_ = c.JSON(200, objectResponses(objects))
}

func typeResponse(t *models.Type) dto.TypeResponse {
	return dto.TypeResponse{
		ID:          t.ID,
		TypeName:    t.TypeName,
		Description: t.Description,
	}
}

func typeResponses(types []models.Type) []dto.TypeResponse {
	out := make([]dto.TypeResponse, len(types))
	for i := range types {
		out[i] = typeResponse(&types[i])
	}
	return out
}
