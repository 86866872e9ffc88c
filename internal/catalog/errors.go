package catalog

import "errors"

var (
	ErrUnknownRoute   = errors.New("UnknownRoute")
	ErrDuplicateRoute = errors.New("duplicate route")
	ErrInvalidRoute   = errors.New("invalid route")
)
