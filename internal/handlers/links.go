package handlers

import (
	"context"
	"errors"

	"github.com/dormatory/dormatory-api/internal/models"
	"github.com/dormatory/dormatory-api/internal/services"
	"github.com/dormatory/dormatory-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type LinkHandler struct {
	linkService LinkServiceInterface
}

func NewLinkHandler(linkService LinkServiceInterface) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

func (h *LinkHandler) Create(c *drift.Context) {
	var req dto.CreateLinkRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.RName == "" {
		c.BadRequest("r_name is required")
		return
	}
	if req.ParentID == 0 || req.ChildID == 0 {
		c.BadRequest("parent_id and child_id are required")
		return
	}

	link, err := h.linkService.Create(context.Background(), req.ParentID, req.ChildID, req.RName)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("parent or child object does not exist")
			return
		}
		c.InternalServerError("failed to create link")
		return
	}

	_ = c.JSON(201, linkResponse(link))
}

// CreateBulk creates several links atomically. It backs both POST /bulk and
// POST /hierarchy; the latter is how the original seeded whole trees.
func (h *LinkHandler) CreateBulk(c *drift.Context) {
	var reqs []dto.CreateLinkRequest
	if err := c.BindJSON(&reqs); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(reqs) == 0 {
		c.BadRequest("at least one link is required")
		return
	}

	inputs := make([]services.LinkInput, len(reqs))
	for i, req := range reqs {
		if req.RName == "" {
			c.BadRequest("r_name is required")
			return
		}
		if req.ParentID == 0 || req.ChildID == 0 {
			c.BadRequest("parent_id and child_id are required")
			return
		}
		inputs[i] = services.LinkInput{ParentID: req.ParentID, ChildID: req.ChildID, RName: req.RName}
	}

	links, err := h.linkService.CreateBulk(context.Background(), inputs)
	if err != nil {
		if errors.Is(err, services.ErrUnknownReference) {
			c.BadRequest("parent or child object does not exist")
			return
		}
		c.InternalServerError("failed to create links")
		return
	}

	_ = c.JSON(201, linkResponses(links))
}

func (h *LinkHandler) Get(c *drift.Context) {
	linkID, ok := intParam(c, "linkId")
	if !ok {
		c.BadRequest("invalid link id")
		return
	}

	link, err := h.linkService.GetByID(context.Background(), linkID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("link not found")
			return
		}
		c.InternalServerError("failed to get link")
		return
	}

	_ = c.JSON(200, linkResponse(link))
}

func (h *LinkHandler) List(c *drift.Context) {
	skip, limit := pagination(c)
	rName := c.QueryParam("r_name")

	var parentID, childID *int
	if raw := c.QueryParam("parent_id"); raw != "" {
		v, ok := parseInt(raw)
		if !ok {
			c.BadRequest("invalid parent_id filter")
			return
		}
		parentID = &v
	}
	if raw := c.QueryParam("child_id"); raw != "" {
		v, ok := parseInt(raw)
		if !ok {
			c.BadRequest("invalid child_id filter")
			return
		}
		childID = &v
	}

	links, err := h.linkService.List(context.Background(), skip, limit, rName, parentID, childID)
	if err != nil {
		c.InternalServerError("failed to list links")
		return
	}

	_ = c.JSON(200, linkResponses(links))
}

func (h *LinkHandler) Update(c *drift.Context) {
	linkID, ok := intParam(c, "linkId")
	if !ok {
		c.BadRequest("invalid link id")
		return
	}

	var req dto.UpdateLinkRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.RName == "" {
		c.BadRequest("r_name is required")
		return
	}

	link, err := h.linkService.Update(context.Background(), linkID, req.RName)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("link not found")
			return
		}
		c.InternalServerError("failed to update link")
		return
	}

	_ = c.JSON(200, linkResponse(link))
}

func (h *LinkHandler) Delete(c *drift.Context) {
	linkID, ok := intParam(c, "linkId")
	if !ok {
		c.BadRequest("invalid link id")
		return
	}

	if err := h.linkService.Delete(context.Background(), linkID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.NotFound("link not found")
			return
		}
		c.InternalServerError("failed to delete link")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "link deleted"})
}

func (h *LinkHandler) GetChildren(c *drift.Context) {
	parentID, ok := intParam(c, "parentId")
	if !ok {
		c.BadRequest("invalid parent id")
		return
	}

	children, err := h.linkService.GetChildren(context.Background(), parentID)
	if err != nil {
		c.InternalServerError("failed to get children")
		return
	}

	_ = c.JSON(200, objectResponses(children))
}

func (h *LinkHandler) GetParents(c *drift.Context) {
	childID, ok := intParam(c, "childId")
	if !ok {
		c.BadRequest("invalid child id")
		return
	}

	parents, err := h.linkService.GetParents(context.Background(), childID)
	if err != nil {
		c.InternalServerError("failed to get parents")
		return
	}

	_ = c.JSON(200, objectResponses(parents))
}

func (h *LinkHandler) GetByRelationship(c *drift.Context) {
	rName := c.Param("rName")
	if rName == "" {
		c.BadRequest("relationship name is required")
		return
	}

	links, err := h.linkService.GetByRelationship(context.Background(), rName)
	if err != nil {
		c.InternalServerError("failed to get links")
		return
	}

	_ = c.JSON(200, linkResponses(links))
}

func linkResponse(l *models.Link) dto.LinkResponse {
	return dto.LinkResponse{
		ID:         l.ID,
		ParentID:   l.ParentID,
		ParentType: l.ParentType,
		ChildType:  l.ChildType,
		RName:      l.RName,
		ChildID:    l.ChildID,
	}
}

func linkResponses(links []models.Link) []dto.LinkResponse {
	out := make([]dto.LinkResponse, len(links))
	for i := range links {
		out[i] = linkResponse(&links[i])
	}
	return out
}
