package service

import "errors"

// ErrMissingRequiredFields is returned when a project arrives without
// an id or source image; such projects are never persisted.
var ErrMissingRequiredFields = errors.New("project id and source image are required")
