package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"hr-agent/internal/catalog"
	"hr-agent/internal/chat"
	tgDelivery "hr-agent/internal/chat/delivery/telegram"
	"hr-agent/internal/dispatcher"
	"hr-agent/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// HR domain
	catalog         *catalog.Catalog
	chatUC          chat.UseCase
	dispatcher      dispatcher.UseCase
	telegramHandler tgDelivery.Handler
	rateLimitPerMin int

	// Readiness of the backing Data Service; nil means always ready.
	ready func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Catalog         *catalog.Catalog
	ChatUseCase     chat.UseCase
	Dispatcher      dispatcher.UseCase
	TelegramHandler tgDelivery.Handler // optional
	RateLimitPerMin int

	Ready func(ctx context.Context) error
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		catalog:         cfg.Catalog,
		chatUC:          cfg.ChatUseCase,
		dispatcher:      cfg.Dispatcher,
		telegramHandler: cfg.TelegramHandler,
		rateLimitPerMin: cfg.RateLimitPerMin,
		ready:           cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.catalog == nil {
		return errors.New("catalog is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.dispatcher == nil {
		return errors.New("dispatcher is required")
	}
	return nil
}
