package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roomify-io/roomify-server/internal/modules/model"
	"github.com/roomify-io/roomify-server/internal/modules/serializer"
	"github.com/roomify-io/roomify-server/internal/modules/service"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

// currentUserID reads the authenticated user id set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

type SaveProjectReq struct {
	Project *model.Project `json:"project"`
}

// SaveProject stores a project for the authenticated user and echoes the
// stored record back, including the server-stamped updatedAt.
func (h *ProjectHandler) SaveProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr())
		return
	}

	var req SaveProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Invalid project data", err))
		return
	}

	saved, err := h.svc.Save(c.Request.Context(), userID, req.Project)
	if err != nil {
		if errors.Is(err, service.ErrMissingRequiredFields) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("Invalid project data", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.StoreErr("Failed to save project", err))
		return
	}

	c.JSON(http.StatusOK, serializer.SaveProjectResponse{
		Saved:   true,
		ID:      saved.ID,
		Project: saved,
	})
}

// GetProject returns a single project by id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr())
		return
	}

	projectID := c.Query("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Project ID is required", nil))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), userID, projectID)
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("Project not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.StoreErr("Failed to load project", err))
		return
	}

	c.JSON(http.StatusOK, serializer.GetProjectResponse{Project: p})
}

// ListProjects returns all projects of the authenticated user.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr())
		return
	}

	projects, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.StoreErr("Failed to list projects", err))
		return
	}
	if projects == nil {
		projects = []*model.Project{}
	}

	c.JSON(http.StatusOK, serializer.ListProjectsResponse{Projects: projects})
}
