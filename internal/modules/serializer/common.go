package serializer

import (
	"github.com/gin-gonic/gin"

	"github.com/roomify-io/roomify-server/internal/modules/model"
)

// ErrorResponse is the error body for every failing endpoint.
// Error is a short stable label; Message carries detail when available.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Err builds an error body with optional detail.
// Error detail is only exposed outside release mode or when it is a
// caller-facing message (msg set by the handler).
func Err(label string, err error) ErrorResponse {
	res := ErrorResponse{Error: label}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Message = err.Error()
	}
	return res
}

// AuthErr is the 401 body.
func AuthErr() ErrorResponse {
	return ErrorResponse{Error: "Unauthorized"}
}

// ParamErr is the 400 body.
func ParamErr(label string, err error) ErrorResponse {
	if label == "" {
		label = "Invalid request"
	}
	return Err(label, err)
}

// StoreErr is the 500 body for KV store failures.
func StoreErr(label string, err error) ErrorResponse {
	if label == "" {
		label = "Storage error"
	}
	return Err(label, err)
}

// NotFoundErr is the 404 body.
func NotFoundErr(label string) ErrorResponse {
	return ErrorResponse{Error: label}
}

// SaveProjectResponse is the body of a successful save.
type SaveProjectResponse struct {
	Saved   bool           `json:"saved"`
	ID      string         `json:"id"`
	Project *model.Project `json:"project"`
}

// GetProjectResponse is the body of a successful get.
type GetProjectResponse struct {
	Project *model.Project `json:"project"`
}

// ListProjectsResponse is the body of a successful list.
type ListProjectsResponse struct {
	Projects []*model.Project `json:"projects"`
}

// VisualizeProjectResponse reports the outcome of a visualization run.
// State is one of the service.Visualize* states; Project is the freshest
// view of the project the server can offer for that state.
type VisualizeProjectResponse struct {
	State   string         `json:"state"`
	Project *model.Project `json:"project"`
}
