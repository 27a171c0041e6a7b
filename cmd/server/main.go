package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/bonnymkuu/Food-Order-App/internal/adapter/catalog"
	"github.com/bonnymkuu/Food-Order-App/internal/adapter/handler"
	"github.com/bonnymkuu/Food-Order-App/internal/adapter/storage"
	"github.com/bonnymkuu/Food-Order-App/internal/core/service"
	"github.com/bonnymkuu/Food-Order-App/internal/port"
	"github.com/bonnymkuu/Food-Order-App/internal/telemetry"
)

const (
	defaultHTTPAddr  = ":8080"
	defaultRedisAddr = "localhost:6379"
	defaultMySQLDSN  = "root:root@tcp(localhost:3306)/storefront?parseTime=true"
)

func main() {
	telemetry.InitLogger()

	exp, _ := stdouttrace.New(stdouttrace.WithPrettyPrint())
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStorage(ctx)
	if err != nil {
		slog.Error("open storage", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	mealdb := catalog.NewMealDBClient(os.Getenv("MEALDB_URL"))

	cartService := service.NewCartService(ctx, store)
	orderService := service.NewOrderService(store, cartService)
	catalogService := service.NewCatalogService(mealdb)

	h := handler.NewHTTPHandler(catalogService, cartService, orderService)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = defaultHTTPAddr
	}
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler.NewRouter(h),
	}

	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	slog.Info("HTTP server stopped")
}

// openStorage picks the persistence backend from the STORAGE env var:
// redis (default), mysql, or memory.
func openStorage(ctx context.Context) (port.StateRepository, func(), error) {
	switch backend := os.Getenv("STORAGE"); backend {
	case "memory":
		slog.Info("using in-memory storage")
		return storage.NewMemoryAdapter(), func() {}, nil

	case "mysql":
		dsn := os.Getenv("MYSQL_DSN")
		if dsn == "" {
			dsn = defaultMySQLDSN
		}
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, nil, err
		}
		db.SetMaxOpenConns(10)
		db.SetConnMaxLifetime(5 * time.Minute)
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		slog.Info("connected to mysql")
		return adapter, func() { db.Close() }, nil

	default:
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = defaultRedisAddr
		}
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		slog.Info("connected to redis", "addr", addr)
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }, nil
	}
}
