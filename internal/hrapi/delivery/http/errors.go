package http

import "errors"

var (
	errInvalidPathParam = errors.New("InvalidArgument: path parameter")
	errInvalidBody      = errors.New("InvalidArgument: body")
)
