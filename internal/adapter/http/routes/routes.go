package routes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thecodecup/internal/adapter/http/handlers"
	"thecodecup/internal/infrastructure/address"
	"thecodecup/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const (
	defaultPort     = "8080"
	shutdownTimeout = 10 * time.Second
)

// Run wires the store and serves the API until SIGINT or SIGTERM. On the way
// out it drains the HTTP server, stops the order simulations and flushes the
// last snapshot.
func Run(logger *zap.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := buildRepository(ctx, logger)
	if err != nil {
		logger.Error("failed to set up persistence", zap.Error(err))
		os.Exit(1)
	}
	defer closeRepo()

	store := usecase.NewStore(repo, storeConfigFromEnv(logger), logger)
	store.Init(ctx)

	publisher, closePublisher := buildPublisher(logger)
	defer closePublisher()
	go usecase.RelayDelivered(ctx, store, publisher, logger)

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addressUseCase := usecase.NewAddressUseCase(address.NewVNAppMobClient("", nil))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStoreRoutes(v1, store)
	addAddressRoutes(v1, handlers.NewAddressHandler(addressUseCase))

	srv := &http.Server{
		Addr:        ":" + getenvDefault("PORT", defaultPort),
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("failed to startup the application", zap.Error(err))
		stop()
	}
	<-shutdownDone

	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		logger.Warn("store close", zap.Error(err))
	}
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
