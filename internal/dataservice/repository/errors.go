package repository

import "hr-agent/internal/dataservice"

// ErrNotFound is the Data Service sentinel, so stores wrap it once.
var ErrNotFound = dataservice.ErrNotFound
