package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisLoadCart_Missing(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "cart")

	lines, err := adapter.LoadCart(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(lines))
	}
}

func TestRedisLoadCart_Corrupt(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Set(ctx, "cart", "definitely not json", 0)
	defer client.Del(ctx, "cart")

	lines, err := adapter.LoadCart(ctx)
	if err != nil {
		t.Fatalf("corrupt cart must not fail the caller: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(lines))
	}
}

func TestRedisSaveLoadCart_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "cart")
	defer client.Del(ctx, "cart")

	in := []domain.CartLine{{ID: "52772", Name: "Teriyaki Chicken", Img: "t.jpg", Price: 7.43, Qty: 2}}
	if err := adapter.SaveCart(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := adapter.LoadCart(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip mismatch: %+v", out)
	}

	before, _ := client.Get(ctx, "cart").Result()
	if err := adapter.SaveCart(ctx, out); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	after, _ := client.Get(ctx, "cart").Result()
	if before != after {
		t.Errorf("save(load()) changed stored content:\n%s\n%s", before, after)
	}
}

func TestRedisAppendOrder(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)

	client.Del(ctx, "orders")
	defer client.Del(ctx, "orders")

	o := domain.Order{
		OrderNo: "ORD-111111-222",
		Items:   []domain.OrderItem{{ID: "52772", Name: "Teriyaki Chicken", Price: 7.43, Qty: 1}},
		Total:   7.43,
		Status:  domain.OrderStatusPending,
	}
	if err := adapter.AppendOrder(ctx, o); err != nil {
		t.Fatalf("append: %v", err)
	}
	o.OrderNo = "ORD-333333-444"
	if err := adapter.AppendOrder(ctx, o); err != nil {
		t.Fatalf("append: %v", err)
	}

	orders, err := adapter.LoadOrders(ctx)
	if err != nil {
		t.Fatalf("load orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[1].OrderNo != "ORD-333333-444" {
		t.Errorf("expected append at the end, got %+v", orders)
	}
}
