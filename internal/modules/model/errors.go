package model

import "errors"

var (
	ErrProjectNotFound       = errors.New("project not found")
	ErrHostingConfigNotFound = errors.New("hosting config not found")
)
