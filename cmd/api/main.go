package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/config"
	"apparel-storefront/internal/db"
	"apparel-storefront/internal/httpserver"
	orderrepo "apparel-storefront/internal/repository/order"
	productrepo "apparel-storefront/internal/repository/product"
	catalogsvc "apparel-storefront/internal/service/catalog"
	checkoutsvc "apparel-storefront/internal/service/checkout"
	guestsvc "apparel-storefront/internal/service/guest"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(productRepo)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	checkoutService := checkoutsvc.New(orderRepo, cfg.ItemWeightKg, logger)
	guestService := guestsvc.New()

	var storageFactory func(guestID string) cart.Storage
	switch cfg.CartStorage {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Fatalf("connect to redis: %v", err)
		}
		defer client.Close()
		storageFactory = func(guestID string) cart.Storage {
			return cart.NewRedisStorage(client, guestID, cfg.CartTTL)
		}
	case "file":
		storageFactory = func(guestID string) cart.Storage {
			return cart.NewFileStorage(cfg.CartDir, guestID)
		}
	default:
		logger.Fatalf("unknown CART_STORAGE %q (want file or redis)", cfg.CartStorage)
	}
	carts := cart.NewManager(storageFactory, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:  catalogService,
		Checkout: checkoutService,
		Guests:   guestService,
		Carts:    carts,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
