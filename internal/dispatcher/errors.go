package dispatcher

import "errors"

var (
	ErrMissingArgument = errors.New("MissingArgument")
	ErrInvalidArgument = errors.New("InvalidArgument")
)
