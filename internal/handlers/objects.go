package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/dormatory/dormatory-api/internal/middleware"
	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type ObjectHandler struct {
	objectService    ObjectServiceInterface
	linkService      LinkServiceInterface
	hierarchyService HierarchyServiceInterface
}

func NewObjectHandler(
	objectService ObjectServiceInterface,
	linkService LinkServiceInterface,
	hierarchyService HierarchyServiceInterface,
) *ObjectHandler {
	return &ObjectHandler{
		objectService:    objectService,
		linkService:      linkService,
		hierarchyService: hierarchyService,
	}
}

func (h *ObjectHandler) Create(c *drift.Context) {
	var req dto.CreateObjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.TypeID == uuid.Nil {
		c.BadRequest("type_id is required")
		return
	}
	if req.CreatedBy == "" {
		req.CreatedBy = middleware.GetUser(c)
	}
	if req.CreatedBy == "" {
		c.BadRequest("created_by is required")
		return
	}

	object, err := h.objectService.Create(context.Background(), req.Name, req.TypeID, req.CreatedBy)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("type_id does not reference an existing type")
			return
		}
		c.InternalServerError("failed to create object")
		return
	}

	_ = c.JSON(201, objectResponse(object))
}

func (h *ObjectHandler) CreateBulk(c *drift.Context) {
	var reqs []dto.CreateObjectRequest
	if err := c.BindJSON(&reqs); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(reqs) == 0 {
		c.BadRequest("at least one object is required")
		return
	}

	user := middleware.GetUser(c)
	inputs := make([]services.ObjectInput, len(reqs))
	for i, req := range reqs {
		if req.Name == "" {
			c.BadRequest("name is required")
			return
		}
		if req.TypeID == uuid.Nil {
			c.BadRequest("type_id is required")
			return
		}
		createdBy := req.CreatedBy
		if createdBy == "" {
			createdBy = user
		}
		if createdBy == "" {
			c.BadRequest("created_by is required")
			return
		}
		inputs[i] = services.ObjectInput{Name: req.Name, TypeID: req.TypeID, CreatedBy: createdBy}
	}

	objects, err := h.objectService.CreateBulk(context.Background(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("type_id does not reference an existing type")
			return
		}
		c.InternalServerError("failed to create objects")
		return
	}

	_ = c.JSON(201, objectResponses(objects))
}

func (h *ObjectHandler) Get(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	object, err := h.objectService.GetByID(context.Background(), objectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("object not found")
			return
		}
		c.InternalServerError("failed to get object")
		return
	}

	_ = c.JSON(200, objectResponse(object))
}

func (h *ObjectHandler) List(c *drift.Context) {
	skip, limit := pagination(c)
	name := c.QueryParam("name")

	var typeID *uuid.UUID
	if raw := c.QueryParam("type_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.BadRequest("invalid type_id filter")
			return
		}
		typeID = &parsed
	}

	objects, err := h.objectService.List(context.Background(), skip, limit, typeID, name)
	if err != nil {
		c.InternalServerError("failed to list objects")
		return
	}

	_ = c.JSON(200, objectResponses(objects))
}

func (h *ObjectHandler) Update(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	var req dto.UpdateObjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	object, err := h.objectService.Update(context.Background(), objectID, req.Name, req.TypeID, req.CreatedBy)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("object not found")
			return
		}
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("type_id does not reference an existing type")
			return
		}
		if errors.Is(err, services.ErrNoFieldsToUpdate) {
			c.BadRequest("no fields to update")
			return
		}
		c.InternalServerError("failed to update object")
		return
	}

	_ = c.JSON(200, objectResponse(object))
}

func (h *ObjectHandler) Delete(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	if err := h.objectService.Delete(context.Background(), objectID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("object not found")
			return
		}
		c.InternalServerError("failed to delete object")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "object deleted"})
}

func (h *ObjectHandler) GetChildren(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	children, err := h.linkService.GetChildren(context.Background(), objectID)
	if err != nil {
		c.InternalServerError("failed to get children")
		return
	}

	_ = c.JSON(200, objectResponses(children))
}

func (h *ObjectHandler) GetParents(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	parents, err := h.linkService.GetParents(context.Background(), objectID)
	if err != nil {
		c.InternalServerError("failed to get parents")
		return
	}

	_ = c.JSON(200, objectResponses(parents))
}

func (h *ObjectHandler) GetHierarchy(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	depth := 0
	if raw := c.QueryParam("depth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.BadRequest("invalid depth")
			return
		}
		depth = parsed
	}

	tree, err := h.hierarchyService.GetHierarchy(context.Background(), objectID, depth)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("object not found")
			return
		}
		c.InternalServerError("failed to get hierarchy")
		return
	}

	_ = c.JSON(200, tree)
}

func objectResponse(o *models.Object) dto.ObjectResponse {
	return dto.ObjectResponse{
		ID:        o.ID,
		Name:      o.Name,
		Version:   o.Version,
		TypeID:    o.TypeID,
		CreatedOn: o.CreatedOn,
		CreatedBy: o.CreatedBy,
	}
}

func objectResponses(objects []models.Object) []dto.ObjectResponse {
	out := make([]dto.ObjectResponse, len(objects))
	for i := range objects {
		out[i] = objectResponse(&objects[i])
	}
	return out
}
