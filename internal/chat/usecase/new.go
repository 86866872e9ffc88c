package usecase

import (
	"hr-agent/internal/catalog"
	"hr-agent/internal/chat"
	"hr-agent/internal/dispatcher"
	"hr-agent/internal/extractor"
	"hr-agent/internal/formatter"
	"hr-agent/internal/router"
	pkgLog "hr-agent/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	cat        *catalog.Catalog
	router     router.Router
	extractor  extractor.Extractor
	dispatcher dispatcher.UseCase
	formatter  formatter.Formatter
}

var _ chat.UseCase = (*implUseCase)(nil)

// New wires the routing pipeline: router, extractor, dispatcher, formatter.
func New(
	l pkgLog.Logger,
	cat *catalog.Catalog,
	r router.Router,
	ex extractor.Extractor,
	d dispatcher.UseCase,
	f formatter.Formatter,
) *implUseCase {
	return &implUseCase{
		l:          l,
		cat:        cat,
		router:     r,
		extractor:  ex,
		dispatcher: d,
		formatter:  f,
	}
}
