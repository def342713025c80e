// stubd serves the in-memory stub of the inventory API, seeded with a
// few products, for developing the CLI without the real backend.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pablonunez10/genex-store-inventory-front/internal/domain"
	"github.com/pablonunez10/genex-store-inventory-front/internal/stub"
)

func main() {
	addr := flag.String("addr", getEnv("STUBD_ADDR", ":8089"), "listen address")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	server := stub.NewServer(logger)
	seed(server.Store())

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("stub api listening", zap.String("addr", *addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func seed(store *stub.Store) {
	now := time.Now().UTC()
	for _, p := range []domain.Product{
		{Name: "Widget", SKU: "W1", SalePrice: decimal.NewFromInt(1000), CurrentStock: 5, IsActive: true},
		{Name: "Gadget", SKU: "G1", SalePrice: decimal.NewFromInt(500), CurrentStock: 12, IsActive: true},
		{Name: "Descontinuado", SKU: "D1", SalePrice: decimal.NewFromInt(750), CurrentStock: 3, IsActive: false},
	} {
		p.CreatedAt = now
		p.UpdatedAt = now
		store.SeedProduct(p)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
