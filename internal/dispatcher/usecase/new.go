package usecase

import (
	"sync"

	"hr-agent/internal/dataservice"
	"hr-agent/internal/dispatcher"
	pkgLog "hr-agent/pkg/log"
)

type implUseCase struct {
	l   pkgLog.Logger
	svc dataservice.Service

	// route id -> compiled *gojsonschema.Schema
	schemas sync.Map
}

var _ dispatcher.UseCase = (*implUseCase)(nil)

// New creates the dispatcher over a Data Service.
func New(l pkgLog.Logger, svc dataservice.Service) *implUseCase {
	return &implUseCase{
		l:   l,
		svc: svc,
	}
}
