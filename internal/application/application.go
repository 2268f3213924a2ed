package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"outlet_margin/internal/config"
	"outlet_margin/internal/domain/entity"
	"outlet_margin/internal/domain/service/calculator"
	"outlet_margin/internal/infrastructure/notifier"
	"outlet_margin/internal/infrastructure/persistence"
	"outlet_margin/internal/server"
	"outlet_margin/internal/worker"
	"outlet_margin/pkg/application/connectors"
	"outlet_margin/pkg/application/modules"
	"outlet_margin/pkg/contextx"
	"outlet_margin/pkg/logx"
	"outlet_margin/pkg/middlewarex"
)

const (
	appName    = "outlet-margin"
	appVersion = "0.1.0"

	httpReadHeaderTimeout = 5 * time.Second
	savedChannelSize      = 100
)

func Run(ctx context.Context, log *slog.Logger) error {
	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	ctx = contextx.WithLogger(ctx, log)

	g, ctx := errgroup.WithContext(ctx)

	// 2. History store: postgres + asynq-зеркало, либо заглушки
	var (
		repo   calculator.HistoryRepository
		mirror calculator.HistoryMirror
	)

	if cfg.HistoryEnabled() {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		db := pg.Client(ctx)
		defer pg.Close(ctx)

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("db ping: %w", err)
		}
		log.Info("database connection OK")

		historyRepo := persistence.NewHistoryRepository(db)
		repo = historyRepo

		rd := &connectors.Redis{
			Address:            cfg.Redis.Address,
			Username:           cfg.Redis.Username,
			Password:           cfg.Redis.Password,
			DatabaseNumber:     cfg.Redis.DatabaseNumber,
			PoolSize:           cfg.Redis.PoolSize,
			MinIdleConnections: cfg.Redis.MinIdleConnections,
			MaxIdleConnections: cfg.Redis.MaxIdleConnections,
		}
		defer rd.Close(ctx)

		mirror = worker.NewEnqueuer(asynq.NewClientFromRedisClient(rd.Client(ctx)))

		historyMirror := worker.NewMirror(historyRepo)

		modules.AsynqServer{
			RedisUsername: cfg.Redis.Username,
			RedisPassword: cfg.Redis.Password,
			RedisAddress:  cfg.Redis.Address,
			RedisDB:       cfg.Redis.DatabaseNumber,
		}.Run(ctx, g,
			modules.AsynqQueues{worker.QueueHistory: 1},
			modules.AsynqHandler{Pattern: worker.TaskHistoryInsert, Handle: historyMirror.HandleInsert},
			modules.AsynqHandler{Pattern: worker.TaskHistoryDelete, Handle: historyMirror.HandleDelete},
		)
	} else {
		log.Info("history persistence disabled: postgres or redis is not configured")
		repo = persistence.NewDisabledHistoryRepository()
		mirror = worker.NoopEnqueuer{}
	}

	// 3. Calculator
	saved := make(chan entity.HistoryRecord, savedChannelSize)

	svc := calculator.NewCalculatorService(repo, mirror).
		WithSavedChannel(saved).
		WithRestoreLimit(cfg.Calculator.HistoryLimit)
	svc.Restore(ctx)

	// 4. Notifier bot
	if cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier bot: %w", err)
		}
		alertBot = alertBot.WithMarginThreshold(cfg.Calculator.AlertMarginPercent)

		g.Go(func() error {
			log.Info("notifier bot started listening")

			if err := alertBot.Run(ctx, saved); err != nil && ctx.Err() == nil {
				log.Error("notifier bot stopped", "error", err)
			}

			return nil
		})
	}

	// 5. HTTP server
	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(middlewarex.TraceID)
	router.Use(middlewarex.Logger)
	router.Use(middlewarex.RequestLogging(masker, cfg.Server.LogFieldMaxLen))
	router.Use(middlewarex.ResponseLogging(masker, cfg.Server.LogFieldMaxLen))
	router.Use(middlewarex.Recovery)

	server.NewServer(server.NewCalculatorServer(svc)).RegisterRoutes(router)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          appName,
		Version:       appVersion,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(ctx, g)
	modules.MetricServer{ListenAddress: cfg.Server.MetricListenAddress}.Run(ctx, g)

	return g.Wait()
}
