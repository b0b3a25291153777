package handlers

import (
	"context"
	"errors"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PermissionHandler struct {
	permissionService PermissionServiceInterface
}

func NewPermissionHandler(permissionService PermissionServiceInterface) *PermissionHandler {
	return &PermissionHandler{permissionService: permissionService}
}

func (h *PermissionHandler) Create(c *drift.Context) {
	var req dto.CreatePermissionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ObjectID == 0 || req.User == "" || req.PermissionLevel == "" {
		c.BadRequest("object_id, user and permission_level are required")
		return
	}

	perm, err := h.permissionService.Create(context.Background(), req.ObjectID, req.User, req.PermissionLevel)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		c.InternalServerError("failed to create permission")
		return
	}

	_ = c.JSON(201, permissionResponse(perm))
}

func (h *PermissionHandler) CreateBulk(c *drift.Context) {
	var reqs []dto.CreatePermissionRequest
	if err := c.BindJSON(&reqs); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(reqs) == 0 {
		c.BadRequest("at least one permission is required")
		return
	}

	inputs := make([]services.PermissionInput, len(reqs))
	for i, req := range reqs {
		if req.ObjectID == 0 || req.User == "" || req.PermissionLevel == "" {
			c.BadRequest("object_id, user and permission_level are required")
			return
		}
		inputs[i] = services.PermissionInput{
			ObjectID:        req.ObjectID,
			User:            req.User,
			PermissionLevel: req.PermissionLevel,
		}
	}

	perms, err := h.permissionService.CreateBulk(context.Background(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		c.InternalServerError("failed to create permissions")
		return
	}

	_ = c.JSON(201, permissionResponses(perms))
}

func (h *PermissionHandler) Get(c *drift.Context) {
	permissionID, ok := intParam(c, "permissionId")
	if !ok {
		c.BadRequest("invalid permission id")
		return
	}

	perm, err := h.permissionService.GetByID(context.Background(), permissionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("permission not found")
			return
		}
		c.InternalServerError("failed to get permission")
		return
	}

	_ = c.JSON(200, permissionResponse(perm))
}

func (h *PermissionHandler) List(c *drift.Context) {
	skip, limit := pagination(c)

	perms, err := h.permissionService.List(context.Background(), skip, limit)
	if err != nil {
		c.InternalServerError("failed to list permissions")
		return
	}

	_ = c.JSON(200, permissionResponses(perms))
}

func (h *PermissionHandler) Update(c *drift.Context) {
	permissionID, ok := intParam(c, "permissionId")
	if !ok {
		c.BadRequest("invalid permission id")
		return
	}

	var req dto.UpdatePermissionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.PermissionLevel == "" {
		c.BadRequest("permission_level is required")
		return
	}

	perm, err := h.permissionService.Update(context.Background(), permissionID, req.PermissionLevel)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("permission not found")
			return
		}
		c.InternalServerError("failed to update permission")
		return
	}

	_ = c.JSON(200, permissionResponse(perm))
}

func (h *PermissionHandler) Delete(c *drift.Context) {
	permissionID, ok := intParam(c, "permissionId")
	if !ok {
		c.BadRequest("invalid permission id")
		return
	}

	if err := h.permissionService.Delete(context.Background(), permissionID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("permission not found")
			return
		}
		c.InternalServerError("failed to delete permission")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "permission deleted"})
}

func (h *PermissionHandler) GetByObject(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	perms, err := h.permissionService.GetByObject(context.Background(), objectID)
	if err != nil {
		c.InternalServerError("failed to get permissions")
		return
	}

	_ = c.JSON(200, permissionResponses(perms))
}

func (h *PermissionHandler) GetByUser(c *drift.Context) {
	user := c.Param("user")
	if user == "" {
		c.BadRequest("user is required")
		return
	}

	perms, err := h.permissionService.GetByUser(context.Background(), user)
	if err != nil {
		c.InternalServerError("failed to get permissions")
		return
	}

	_ = c.JSON(200, permissionResponses(perms))
}

// Check reports whether a user has a grant on an object. No grant is a
// normal 200 response with granted=false.
func (h *PermissionHandler) Check(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}
	user := c.Param("user")
	if user == "" {
		c.BadRequest("user is required")
		return
	}

	check, err := h.permissionService.Check(context.Background(), objectID, user)
	if err != nil {
		c.InternalServerError("failed to check permission")
		return
	}

	_ = c.JSON(200, dto.PermissionCheckResponse{
		ObjectID:        check.ObjectID,
		User:            check.User,
		Granted:         check.Granted,
		PermissionLevel: check.Level,
	})
}

func permissionResponse(p *models.Permission) dto.PermissionResponse {
	return dto.PermissionResponse{
		ID:              p.ID,
		ObjectID:        p.ObjectID,
		User:            p.User,
		PermissionLevel: p.PermissionLevel,
	}
}

func permissionResponses(perms []models.Permission) []dto.PermissionResponse {
	out := make([]dto.PermissionResponse, len(perms))
	for i := range perms {
		out[i] = permissionResponse(&perms[i])
	}
	return out
}
