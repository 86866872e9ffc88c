package usecase

import (
	"time"

	"hr-agent/internal/dataservice"
	"hr-agent/internal/dataservice/repository"
	"hr-agent/pkg/datemath"
	pkgLog "hr-agent/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	dates *datemath.Parser
	now   func() time.Time
}

var _ dataservice.Service = (*implUseCase)(nil)

// Option configures the engine.
type Option func(*implUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates the Data Service engine over a record repository.
func New(l pkgLog.Logger, repo repository.Repository, dates *datemath.Parser, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
		now:   time.Now,
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

func (uc *implUseCase) today() time.Time {
	return uc.dates.Day(uc.now()).From
}
