package binder

import "errors"

// Common binding errors
var (
	ErrBinderNotFound       = errors.New("no binder available for target type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidTarget        = errors.New("invalid bind target")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidYAML          = errors.New("invalid YAML")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrMissingContentType   = errors.New("missing content type")
)
