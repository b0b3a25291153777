package handlers

import (
	"context"
	"errors"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type AttributeHandler struct {
	attributeService AttributeServiceInterface
}

func NewAttributeHandler(attributeService AttributeServiceInterface) *AttributeHandler {
	return &AttributeHandler{attributeService: attributeService}
}

// Set upserts an attribute: repeating the same (object_id, name) replaces
// the value instead of erroring.
func (h *AttributeHandler) Set(c *drift.Context) {
	var req dto.SetAttributeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ObjectID == 0 || req.Name == "" {
		c.BadRequest("object_id and name are required")
		return
	}

	attr, err := h.attributeService.Set(context.Background(), req.ObjectID, req.Name, req.Value)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		c.InternalServerError("failed to set attribute")
		return
	}

	_ = c.JSON(201, attributeResponse(attr))
}

func (h *AttributeHandler) SetBulk(c *drift.Context) {
	var reqs []dto.SetAttributeRequest
	if err := c.BindJSON(&reqs); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(reqs) == 0 {
		c.BadRequest("at least one attribute is required")
		return
	}

	inputs := make([]services.AttributeInput, len(reqs))
	for i, req := range reqs {
		if req.ObjectID == 0 || req.Name == "" {
			c.BadRequest("object_id and name are required")
			return
		}
		inputs[i] = services.AttributeInput{ObjectID: req.ObjectID, Name: req.Name, Value: req.Value}
	}

	attrs, err := h.attributeService.SetBulk(context.Background(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		c.InternalServerError("failed to set attributes")
		return
	}

	_ = c.JSON(201, attributeResponses(attrs))
}

func (h *AttributeHandler) Get(c *drift.Context) {
	attributeID, ok := intParam(c, "attributeId")
	if !ok {
		c.BadRequest("invalid attribute id")
		return
	}

	attr, err := h.attributeService.GetByID(context.Background(), attributeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("attribute not found")
			return
		}
		c.InternalServerError("failed to get attribute")
		return
	}

	_ = c.JSON(200, attributeResponse(attr))
}

func (h *AttributeHandler) List(c *drift.Context) {
	skip, limit := pagination(c)

	attrs, err := h.attributeService.List(context.Background(), skip, limit)
	if err != nil {
		c.InternalServerError("failed to list attributes")
		return
	}

	_ = c.JSON(200, attributeResponses(attrs))
}

func (h *AttributeHandler) Update(c *drift.Context) {
	attributeID, ok := intParam(c, "attributeId")
	if !ok {
		c.BadRequest("invalid attribute id")
		return
	}

	var req dto.UpdateAttributeRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	attr, err := h.attributeService.Update(context.Background(), attributeID, req.Value)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("attribute not found")
			return
		}
		c.InternalServerError("failed to update attribute")
		return
	}

	_ = c.JSON(200, attributeResponse(attr))
}

func (h *AttributeHandler) Delete(c *drift.Context) {
	attributeID, ok := intParam(c, "attributeId")
	if !ok {
		c.BadRequest("invalid attribute id")
		return
	}

	if err := h.attributeService.Delete(context.Background(), attributeID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("attribute not found")
			return
		}
		c.InternalServerError("failed to delete attribute")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "attribute deleted"})
}

func (h *AttributeHandler) GetByObject(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	attrs, err := h.attributeService.GetByObject(context.Background(), objectID)
	if err != nil {
		c.InternalServerError("failed to get attributes")
		return
	}

	_ = c.JSON(200, attributeResponses(attrs))
}

func (h *AttributeHandler) GetByName(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}
	name := c.Param("name")
	if name == "" {
		c.BadRequest("attribute name is required")
		return
	}

	attr, err := h.attributeService.GetByName(context.Background(), objectID, name)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("attribute not found")
			return
		}
		c.InternalServerError("failed to get attribute")
		return
	}

	_ = c.JSON(200, attributeResponse(attr))
}

func (h *AttributeHandler) GetMap(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	values, err := h.attributeService.GetMap(context.Background(), objectID)
	if err != nil {
		c.InternalServerError("failed to get attribute map")
		return
	}

	_ = c.JSON(200, values)
}

func (h *AttributeHandler) SetMap(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	var values map[string]string
	if err := c.BindJSON(&values); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(values) == 0 {
		c.BadRequest("at least one attribute is required")
		return
	}

	attrs, err := h.attributeService.SetMap(context.Background(), objectID, values)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		c.InternalServerError("failed to set attributes")
		return
	}

	_ = c.JSON(200, attributeResponses(attrs))
}

func attributeResponse(a *models.Attribute) dto.AttributeResponse {
	return dto.AttributeResponse{
		ID:        a.ID,
		ObjectID:  a.ObjectID,
		Name:      a.Name,
		Value:     a.Value,
		CreatedOn: a.CreatedOn,
		UpdatedOn: a.UpdatedOn,
	}
}

func attributeResponses(attrs []models.Attribute) []dto.AttributeResponse {
	out := make([]dto.AttributeResponse, len(attrs))
	for i := range attrs {
		out[i] = attributeResponse(&attrs[i])
	}
	return out
}
