package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"hr-agent/config"
	_ "hr-agent/docs" // Swagger docs
	"hr-agent/internal/catalog"
	chatTelegram "hr-agent/internal/chat/delivery/telegram"
	chatUC "hr-agent/internal/chat/usecase"
	"hr-agent/internal/dataservice"
	"hr-agent/internal/dataservice/cache"
	"hr-agent/internal/dataservice/repository"
	"hr-agent/internal/dataservice/repository/memory"
	"hr-agent/internal/dataservice/repository/postgre"
	"hr-agent/internal/dataservice/rpc"
	dsUC "hr-agent/internal/dataservice/usecase"
	dispatchUC "hr-agent/internal/dispatcher/usecase"
	"hr-agent/internal/extractor"
	"hr-agent/internal/formatter"
	"hr-agent/internal/httpserver"
	"hr-agent/internal/router"
	"hr-agent/pkg/datemath"
	"hr-agent/pkg/log"
	"hr-agent/pkg/postgres"
	"hr-agent/pkg/redis"
	"hr-agent/pkg/telegram"
)

// @title       HR Agent API
// @description HR back-office API with a deterministic Vietnamese/English intent router.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting HR Agent...")
	logger.Infof(ctx, "Environment: %s, Data Service driver: %s", cfg.Environment.Name, cfg.DataService.Driver)

	// 3. Date math
	dates, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Data Service
	svc, ready, cleanup, err := newDataService(ctx, cfg, logger, dates)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Data Service: %v", err)
		return
	}
	defer cleanup()

	// 5. NLU pipeline
	cat := catalog.Default()

	extraRules, err := router.LoadRules(cfg.Router.PhrasesFile)
	if err != nil {
		logger.Errorf(ctx, "Failed to load phrase rules: %v", err)
		return
	}
	intentRouter, err := router.New(cat, logger, extraRules...)
	if err != nil {
		logger.Errorf(ctx, "Failed to build intent router: %v", err)
		return
	}

	dispatcher := dispatchUC.New(logger, svc)
	chat := chatUC.New(logger, cat, intentRouter,
		extractor.New(logger, svc, dates),
		dispatcher,
		formatter.New(logger),
	)
	logger.Infof(ctx, "Catalog: %d routes, %d phrase rules", len(cat.All()), len(intentRouter.Rules()))

	// 6. Telegram (optional)
	var telegramHandler chatTelegram.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken, 0)
		telegramHandler = chatTelegram.New(logger, chat, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Catalog:         cat,
		ChatUseCase:     chat,
		Dispatcher:      dispatcher,
		TelegramHandler: telegramHandler,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
		Ready:           ready,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newDataService builds the configured backend, optionally behind the redis
// cache. ready probes the backing stores; cleanup closes them.
func newDataService(ctx context.Context, cfg *config.Config, l log.Logger, dates *datemath.Parser) (
	svc dataservice.Service, ready func(context.Context) error, cleanup func(), err error,
) {
	var (
		db     *sql.DB
		rdb    *goredis.Client
		probes []func(context.Context) error
	)
	cleanup = func() {
		if rdb != nil {
			rdb.Close()
		}
		if db != nil {
			db.Close()
		}
	}

	switch cfg.DataService.Driver {
	case config.DriverRPC:
		svc, err = rpc.New(l, rpc.Config{
			Endpoint: cfg.DataService.Endpoint,
			Token:    cfg.DataService.Token,
			Timeout:  cfg.DataService.Timeout,
			OAuth2: rpc.OAuth2Config{
				TokenURL:     cfg.DataService.OAuth2.TokenURL,
				ClientID:     cfg.DataService.OAuth2.ClientID,
				ClientSecret: cfg.DataService.OAuth2.ClientSecret,
				Scopes:       cfg.DataService.OAuth2.Scopes,
			},
		})
		if err != nil {
			return nil, nil, cleanup, err
		}
	default:
		var repo repository.Repository
		if cfg.DataService.Driver == config.DriverPostgres {
			db, err = postgres.Connect(ctx, postgres.Config{
				DSN:            cfg.Postgres.DSN,
				MaxConnections: cfg.Postgres.MaxConnections,
				MaxIdle:        cfg.Postgres.MaxIdle,
			})
			if err != nil {
				return nil, nil, cleanup, err
			}
			if cfg.Postgres.Migrate {
				if err = postgre.Migrate(ctx, db); err != nil {
					return nil, nil, cleanup, err
				}
			}
			repo = postgre.New(db, l)
			probes = append(probes, db.PingContext)
		} else {
			repo = memory.New()
		}
		svc = dsUC.New(l, repo, dates)
	}

	if cfg.Redis.Addr != "" {
		rdb, err = redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, cleanup, err
		}
		svc = cache.New(l, svc, rdb, cfg.Redis.TTL)
		probes = append(probes, func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		l.Infof(ctx, "Data Service cache enabled at %s", cfg.Redis.Addr)
	}

	ready = func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		for _, p := range probes {
			if err := p(ctx); err != nil {
				return err
			}
		}
		return nil
	}
	return svc, ready, cleanup, nil
}
