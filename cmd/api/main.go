package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"carameche/internal/catalog"
	"carameche/internal/config"
	"carameche/internal/db"
	"carameche/internal/httpserver"
	"carameche/internal/marketplace"
	orderrepo "carameche/internal/repository/order"
	sessionrepo "carameche/internal/repository/session"
	cartsvc "carameche/internal/service/cart"
	ordersvc "carameche/internal/service/order"
	"carameche/internal/translate"
)

func main() {
	cfg := config.FromEnv()
	logger := config.NewLogger(cfg)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer dbpool.Close()

	rdb, err := db.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to redis")
	}
	defer rdb.Close()

	market := marketplace.New(nil, cfg.MarketBaseURL, cfg.MarketToken, logger)
	translator := translate.New(nil, cfg.TranslateURL, logger)
	sessionStore := sessionrepo.NewRedisStore(rdb, logger)
	catalogCache := catalog.NewCache(market, translator, sessionStore, logger)

	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, logger)
	cartService := cartsvc.New(sessionStore, catalogCache, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, rdb, httpserver.Deps{
		Catalog: catalogCache,
		Cart:    cartService,
		Orders:  orderService,
	}, httpserver.Options{
		CORSOrigins: cfg.CORSOrigins,
		PageSize:    cfg.PageSize,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
