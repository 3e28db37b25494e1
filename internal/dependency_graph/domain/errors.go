package domain

import "errors"

var (
	ErrInvalidClassName = errors.New("class name is required")
	ErrClassNotFound    = errors.New("class not found")
	ErrRootLookupFailed = errors.New("root class lookup failed")
	ErrNodeNotFound     = errors.New("node not found in graph")
	ErrNoDocument       = errors.New("no knit document loaded")
	ErrInvalidDocument  = errors.New("invalid knit document")
	ErrSessionNotFound  = errors.New("session not found")
)
