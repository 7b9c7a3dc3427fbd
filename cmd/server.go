package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txwatch/internal/auth"
	"txwatch/internal/config"
	"txwatch/internal/core"
	"txwatch/internal/db"
	"txwatch/internal/ethereum"
	"txwatch/internal/http/handler"
	"txwatch/internal/http/handler/middleware"
	"txwatch/internal/http/payload"
	"txwatch/internal/http/server"
	"txwatch/internal/kafka"
	"txwatch/internal/lock"
	"txwatch/internal/repository"
	"txwatch/internal/store"
	"txwatch/internal/telemetry"
	"txwatch/pkg/jwt"
	"txwatch/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceName  = "txwatch"
	lockKey      = "txwatch:pending-tracker"
	eventBuffer  = 256
	operatorArgs = 2
)

var errUsage error = errors.New("usage: txwatch [operator <username> <password>]")

// Start runs the tracker service, or the operator subcommand when args start
// with "operator".
func Start(args []string) error {
	if len(args) > 0 {
		if args[0] != "operator" || len(args[1:]) != operatorArgs {
			return errUsage
		}
		return createOperator(args[1], args[2])
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))

	shutdownTracer, err := telemetry.InitTracer(ctx, serviceName, cfg.OTLPEndpoint)
	if err != nil {
		logger.Warnw("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Errorw("failed to flush traces", "error", err)
		}
	}()

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewTransactionRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	txStore := store.NewStore(logger, repo)
	if err = txStore.Load(ctx); err != nil {
		logger.Errorw("failed to load transactions", "error", err)
		return err
	}

	clients := make(ethereum.NetworkClients, len(cfg.NetworkClients))
	for _, nc := range cfg.NetworkClients {
		client, err := ethereum.DialNetworkClient(ctx, logger, nc.ID, nc.URL, cfg.BlockPollInterval)
		if err != nil {
			logger.Errorw("network client connection failed", "networkClientId", nc.ID, "error", err)
			return err
		}
		defer client.Close()
		clients[nc.ID] = client
		logger.Infow("network client connected", "networkClientId", nc.ID, "chainId", client.ChainID)
	}

	globalLock, closeLock, err := newGlobalLock(ctx, logger, cfg)
	if err != nil {
		logger.Errorw("failed to create global lock", "error", err)
		return err
	}
	defer closeLock()

	hub := core.NewEventHub()
	defer hub.Close()

	registry := newTrackerRegistry(logger, cfg, clients, txStore, globalLock, hub)
	defer registry.Close()

	storeEvents := make(chan core.Event, eventBuffer)
	storeSub := hub.Subscribe(storeEvents)
	defer storeSub.Unsubscribe()
	go txStore.Run(ctx, storeEvents)

	if len(cfg.KafkaBrokers) > 0 {
		writer, err := kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			logger.Errorw("failed to create kafka writer", "error", err)
			return err
		}
		producer := kafka.NewEventProducer(logger, writer)
		defer producer.Close()

		kafkaEvents := make(chan core.Event, eventBuffer)
		kafkaSub := hub.Subscribe(kafkaEvents)
		defer kafkaSub.Unsubscribe()
		go producer.Run(ctx, kafkaEvents)
	}

	txStore.OnChange(func(tx core.Transaction) {
		if err := registry.StartIfPendingTransactions(tx.NetworkClientID); err != nil {
			logger.Warnw("failed to refresh tracker", "networkClientId", tx.NetworkClientID, "error", err)
		}
	})

	for _, client := range clients {
		go client.BlockTracker.Run(ctx)
	}
	registry.StartAll()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))
	authenticator := auth.NewAuthenticator(logger, repo, jwtService)

	// handler
	trackerHlr := handler.NewTrackerHandler(
		logger,
		payload.Decoder{},
		authenticator,
		txStore,
		registry,
		clients)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	authMw := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux.HandleFunc(handler.Authenticate, trackerHlr.HandleAuthenticate)
	mux.Handle(handler.ListTransactions, authMw.Auth(http.HandlerFunc(trackerHlr.HandleListTransactions)))
	mux.Handle(handler.SubmitTransaction, authMw.Auth(http.HandlerFunc(trackerHlr.HandleSubmitTransaction)))
	mux.Handle(handler.CheckTransaction, authMw.Auth(http.HandlerFunc(trackerHlr.HandleCheckTransaction)))
	mux.Handle(handler.PollTransaction, authMw.Auth(http.HandlerFunc(trackerHlr.HandlePollTransaction)))
	mux.Handle(handler.DeleteTransaction, authMw.Auth(http.HandlerFunc(trackerHlr.HandleDeleteTransaction)))

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func newTrackerRegistry(
	logger *zap.SugaredLogger,
	cfg config.App,
	clients ethereum.NetworkClients,
	txStore *store.Store,
	globalLock core.GlobalLock,
	hub *core.EventHub,
) *core.TrackerRegistry {
	getChainQuerier := func(networkClientID string) core.ChainQuerier {
		client, ok := clients[networkClientID]
		if !ok {
			return nil
		}
		return client.Service
	}
	resubmitEnabled := cfg.ResubmitEnabled
	publisher := ethereum.NewPublisher(logger)

	trackers := make([]*core.PendingTransactionTracker, 0, len(clients))
	for _, client := range clients {
		trackers = append(trackers, core.NewPendingTransactionTracker(logger, core.Options{
			ChainID:           client.ChainID,
			NetworkClientID:   client.ID,
			Transactions:      txStore,
			GetChainQuerier:   getChainQuerier,
			Lock:              globalLock,
			Publisher:         publisher,
			BlockSource:       client.BlockTracker,
			Hub:               hub,
			IsResubmitEnabled: func() bool { return resubmitEnabled },
		}))
	}

	return core.NewTrackerRegistry(logger, trackers...)
}

// newGlobalLock returns a redis lock shared by every instance when REDIS_ADDR
// is set, and a process-local lock otherwise.
func newGlobalLock(ctx context.Context, logger *zap.SugaredLogger, cfg config.App) (core.GlobalLock, func(), error) {
	if cfg.RedisAddr == "" {
		return lock.NewLocalLock(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			logger.Errorw("failed to close redis client", "error", err)
		}
	}
	return lock.NewRedisLock(logger, client, lockKey, cfg.LockTTL), closeFn, nil
}

func createOperator(username, password string) error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	cfg, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	repo := repository.NewTransactionRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	authenticator := auth.NewAuthenticator(logger, repo, jwt.NewJWTService([]byte(cfg.JWTSecret)))
	_, err = authenticator.CreateOperator(context.Background(), username, password)
	return err
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}
