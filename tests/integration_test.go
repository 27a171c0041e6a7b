package tests

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bonnymkuu/Food-Order-App/internal/adapter/storage"
	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
	"github.com/bonnymkuu/Food-Order-App/internal/core/service"
	"github.com/bonnymkuu/Food-Order-App/internal/port"
)

func getRedisAdapter(t *testing.T) (*storage.RedisAdapter, func()) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	ctx := context.Background()
	client.Del(ctx, "cart", "orders")
	cleanup := func() {
		client.Del(ctx, "cart", "orders")
		client.Close()
	}
	return storage.NewRedisAdapter(client), cleanup
}

func getMySQLAdapter(t *testing.T) (*storage.MySQLAdapter, func()) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/storefront?parseTime=true"
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	ctx := context.Background()
	adapter := storage.NewMySQLAdapter(db)
	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	db.ExecContext(ctx, `DELETE FROM storefront_state WHERE k IN ('cart','orders')`)
	cleanup := func() {
		db.ExecContext(ctx, `DELETE FROM storefront_state WHERE k IN ('cart','orders')`)
		db.Close()
	}
	return adapter, cleanup
}

// runSessionFlow exercises a full storefront session: reload, browse-free
// cart mutation, checkout, and a second session seeing the results.
func runSessionFlow(t *testing.T, store port.StateRepository) {
	t.Helper()
	ctx := context.Background()

	cart := service.NewCartService(ctx, store)
	orders := service.NewOrderService(store, cart)

	teriyaki := domain.CartLine{ID: "52772", Name: "Teriyaki Chicken", Img: "t.jpg", Price: 7.43}
	if err := cart.Add(ctx, teriyaki); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := cart.Add(ctx, teriyaki); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := cart.Total(); got != 14.86 {
		t.Fatalf("total %v, want 14.86", got)
	}

	// A second session constructed from the same store sees the
	// write-through state.
	reloaded := service.NewCartService(ctx, store)
	if reloaded.Len() != 1 || reloaded.Total() != 14.86 {
		t.Fatalf("reloaded cart: %d lines, total %v", reloaded.Len(), reloaded.Total())
	}

	customer := domain.Customer{
		Name:    "customer-" + uuid.NewString()[:8],
		Phone:   "555",
		Address: "1 Main St",
		Payment: domain.PaymentCard,
	}
	placed, err := orders.Checkout(ctx, customer)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if cart.Len() != 0 {
		t.Error("cart not cleared after checkout")
	}
	persistedCart, err := store.LoadCart(ctx)
	if err != nil || len(persistedCart) != 0 {
		t.Errorf("persisted cart after checkout: %d lines, err %v", len(persistedCart), err)
	}

	log := orders.Orders(ctx)
	if len(log) != 1 {
		t.Fatalf("expected 1 order in the log, got %d", len(log))
	}
	if log[0].OrderNo != placed.OrderNo || log[0].Total != 14.86 {
		t.Errorf("logged order mismatch: %+v", log[0])
	}
	if log[0].Customer.Name != customer.Name {
		t.Errorf("customer %q, want %q", log[0].Customer.Name, customer.Name)
	}
}

func TestSessionFlow_Redis(t *testing.T) {
	store, cleanup := getRedisAdapter(t)
	defer cleanup()
	runSessionFlow(t, store)
}

func TestSessionFlow_MySQL(t *testing.T) {
	store, cleanup := getMySQLAdapter(t)
	defer cleanup()
	runSessionFlow(t, store)
}
