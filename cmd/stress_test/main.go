// Rapid-checkout generator. Order numbers carry only six timestamp digits
// plus a 3-digit random suffix, so collisions across fast successive
// checkouts are theoretically possible; this tool measures how often they
// actually happen.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bonnymkuu/Food-Order-App/internal/adapter/storage"
	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
	"github.com/bonnymkuu/Food-Order-App/internal/core/service"
)

const (
	workerCount    = 10
	ordersPerBatch = 50
)

func main() {
	ctx := context.Background()
	store := storage.NewMemoryAdapter()

	start := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(ctx, id, store)
		}(i)
	}
	wg.Wait()

	elapsed := time.Since(start)

	orders, err := store.LoadOrders(ctx)
	if err != nil {
		log.Fatalf("load orders: %v", err)
	}

	seen := make(map[string]int, len(orders))
	for _, o := range orders {
		seen[o.OrderNo]++
	}
	collisions := 0
	for no, n := range seen {
		if n > 1 {
			collisions += n - 1
			log.Printf("collision: %s appeared %d times", no, n)
		}
	}

	fmt.Println("=== Results ===")
	fmt.Printf("Orders placed:     %d\n", len(orders))
	fmt.Printf("Distinct numbers:  %d\n", len(seen))
	fmt.Printf("Collisions:        %d\n", collisions)
	fmt.Printf("Duration:          %v\n", elapsed)
	fmt.Printf("Throughput:        %.0f orders/sec\n", float64(len(orders))/elapsed.Seconds())
}

// runWorker drives its own cart session against the shared order log,
// the way independent checkouts would land in rapid succession.
func runWorker(ctx context.Context, id int, store *storage.MemoryAdapter) {
	cart := service.NewCartService(ctx, storage.NewMemoryAdapter())
	orders := service.NewOrderService(store, cart)

	for i := 0; i < ordersPerBatch; i++ {
		mealID := fmt.Sprintf("527%02d", i%100)
		if err := cart.Add(ctx, domain.CartLine{
			ID:    mealID,
			Name:  fmt.Sprintf("Meal %s", mealID),
			Price: domain.PriceFromID(mealID),
		}); err != nil {
			log.Printf("worker %d: add: %v", id, err)
			continue
		}

		customer := domain.Customer{
			Name:    fmt.Sprintf("customer-%s", uuid.NewString()[:8]),
			Phone:   "555",
			Address: "1 Main St",
			Payment: domain.PaymentCash,
		}
		if _, err := orders.Checkout(ctx, customer); err != nil {
			log.Printf("worker %d: checkout: %v", id, err)
		}
	}
}
