package dataservice

import "errors"

var (
	ErrDataService      = errors.New("DataServiceError")
	ErrInvalidCondition = errors.New("invalid domain predicate")
	ErrUnknownEntity    = errors.New("unknown entity")
	ErrUnsupportedOp    = errors.New("unsupported operation")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidState     = errors.New("invalid state transition")
	ErrMissingValue     = errors.New("missing value")
	ErrAlreadyCheckedIn = errors.New("employee is already checked in")
	ErrNotCheckedIn     = errors.New("employee is not checked in")
)
