package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrUnknownRoute = errors.New("UnknownRoute")
)
