package handlers

import (
	"context"
	"errors"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type VersioningHandler struct {
	versioningService VersioningServiceInterface
}

func NewVersioningHandler(versioningService VersioningServiceInterface) *VersioningHandler {
	return &VersioningHandler{versioningService: versioningService}
}

func (h *VersioningHandler) Create(c *drift.Context) {
	var req dto.CreateVersioningRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ObjectID == 0 {
		c.BadRequest("object_id is required")
		return
	}
	if req.Version <= 0 {
		c.BadRequest("version must be positive")
		return
	}

	record, err := h.versioningService.Create(context.Background(), req.ObjectID, req.Version, req.Snapshot)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		if errors.Is(err, services.ErrVersionConflict) {
			_ = c.JSON(409, map[string]string{"error": "version already exists for this object"})
			return
		}
		c.InternalServerError("failed to create versioning record")
		return
	}

	_ = c.JSON(201, versioningResponse(record))
}

// CreateNext assigns the next version number for the object server-side.
func (h *VersioningHandler) CreateNext(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	var req dto.CreateNextVersionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	record, err := h.versioningService.CreateNext(context.Background(), objectID, req.Snapshot)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.NotFound("object not found")
			return
		}
		if errors.Is(err, services.ErrVersionConflict) {
			_ = c.JSON(409, map[string]string{"error": "version assignment conflict, retry"})
			return
		}
		c.InternalServerError("failed to create version")
		return
	}

	_ = c.JSON(201, versioningResponse(record))
}

func (h *VersioningHandler) CreateBulk(c *drift.Context) {
	var reqs []dto.CreateVersioningRequest
	if err := c.BindJSON(&reqs); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(reqs) == 0 {
		c.BadRequest("at least one versioning record is required")
		return
	}

	inputs := make([]services.VersioningInput, len(reqs))
	for i, req := range reqs {
		if req.ObjectID == 0 {
			c.BadRequest("object_id is required")
			return
		}
		if req.Version <= 0 {
			c.BadRequest("version must be positive")
			return
		}
		inputs[i] = services.VersioningInput{
			ObjectID: req.ObjectID,
			Version:  req.Version,
			Snapshot: req.Snapshot,
		}
	}

	records, err := h.versioningService.CreateBulk(context.Background(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("object does not exist")
			return
		}
		if errors.Is(err, services.ErrVersionConflict) {
			_ = c.JSON(409, map[string]string{"error": "version already exists for this object"})
			return
		}
		c.InternalServerError("failed to create versioning records")
		return
	}

	_ = c.JSON(201, versioningResponses(records))
}

func (h *VersioningHandler) Get(c *drift.Context) {
	versioningID, ok := intParam(c, "versioningId")
	if !ok {
		c.BadRequest("invalid versioning id")
		return
	}

	record, err := h.versioningService.GetByID(context.Background(), versioningID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("versioning record not found")
			return
		}
		c.InternalServerError("failed to get versioning record")
		return
	}

	_ = c.JSON(200, versioningResponse(record))
}

func (h *VersioningHandler) List(c *drift.Context) {
	skip, limit := pagination(c)

	records, err := h.versioningService.List(context.Background(), skip, limit)
	if err != nil {
		c.InternalServerError("failed to list versioning records")
		return
	}

	_ = c.JSON(200, versioningResponses(records))
}

func (h *VersioningHandler) Update(c *drift.Context) {
	versioningID, ok := intParam(c, "versioningId")
	if !ok {
		c.BadRequest("invalid versioning id")
		return
	}

	var req dto.UpdateVersioningRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Snapshot == nil {
		c.BadRequest("snapshot is required")
		return
	}

	record, err := h.versioningService.Update(context.Background(), versioningID, req.Snapshot)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("versioning record not found")
			return
		}
		c.InternalServerError("failed to update versioning record")
		return
	}

	_ = c.JSON(200, versioningResponse(record))
}

func (h *VersioningHandler) Delete(c *drift.Context) {
	versioningID, ok := intParam(c, "versioningId")
	if !ok {
		c.BadRequest("invalid versioning id")
		return
	}

	if err := h.versioningService.Delete(context.Background(), versioningID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("versioning record not found")
			return
		}
		c.InternalServerError("failed to delete versioning record")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "versioning record deleted"})
}

func (h *VersioningHandler) GetByObject(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	records, err := h.versioningService.GetByObject(context.Background(), objectID)
	if err != nil {
		c.InternalServerError("failed to get versioning records")
		return
	}

	_ = c.JSON(200, versioningResponses(records))
}

func (h *VersioningHandler) GetLatest(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}

	record, err := h.versioningService.GetLatest(context.Background(), objectID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("no versions recorded for object")
			return
		}
		c.InternalServerError("failed to get latest version")
		return
	}

	_ = c.JSON(200, versioningResponse(record))
}

func (h *VersioningHandler) GetByVersion(c *drift.Context) {
	objectID, ok := intParam(c, "objectId")
	if !ok {
		c.BadRequest("invalid object id")
		return
	}
	version, ok := intParam(c, "version")
	if !ok {
		c.BadRequest("invalid version")
		return
	}

	record, err := h.versioningService.GetByVersion(context.Background(), objectID, version)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("version not found")
			return
		}
		c.InternalServerError("failed to get version")
		return
	}

	_ = c.JSON(200, versioningResponse(record))
}

func versioningResponse(v *models.Versioning) dto.VersioningResponse {
	return dto.VersioningResponse{
		ID:        v.ID,
		ObjectID:  v.ObjectID,
		Version:   v.Version,
		Snapshot:  v.Snapshot,
		CreatedAt: v.CreatedAt,
	}
}

func versioningResponses(records []models.Versioning) []dto.VersioningResponse {
	out := make([]dto.VersioningResponse, len(records))
	for i := range records {
		out[i] = versioningResponse(&records[i])
	}
	return out
}
