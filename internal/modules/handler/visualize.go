package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomify-io/roomify-server/internal/modules/model"
	"github.com/roomify-io/roomify-server/internal/modules/serializer"
	"github.com/roomify-io/roomify-server/internal/modules/service"
)

type VisualizeHandler struct {
	svc service.VisualizeService
}

func NewVisualizeHandler(s service.VisualizeService) *VisualizeHandler {
	return &VisualizeHandler{svc: s}
}

type VisualizeProjectReq struct {
	// Force defaults to true: triggering visualization regenerates even
	// when a rendered image is already stored.
	Force *bool `form:"force" json:"force"`
}

// VisualizeProject runs the generation pipeline for one project.
func (h *VisualizeHandler) VisualizeProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr())
		return
	}

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Project ID is required", nil))
		return
	}

	var req VisualizeProjectReq
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Invalid request", err))
		return
	}
	force := true
	if req.Force != nil {
		force = *req.Force
	}

	out, err := h.svc.Run(c.Request.Context(), service.VisualizeInput{
		UserID:    userID,
		ProjectID: projectID,
		Force:     force,
	})
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.StoreErr("Failed to visualize project", err))
		return
	}

	if out.State == service.StateNoSource {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Project has no source image", nil))
		return
	}

	c.JSON(http.StatusOK, serializer.VisualizeProjectResponse{
		State:   string(out.State),
		Project: out.Project,
	})
}
