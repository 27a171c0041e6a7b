package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bonnymkuu/Food-Order-App/internal/core/domain"
	"github.com/bonnymkuu/Food-Order-App/internal/core/service"
)

type HTTPHandler struct {
	catalog *service.CatalogService
	cart    *service.CartService
	orders  *service.OrderService
}

func NewHTTPHandler(catalog *service.CatalogService, cart *service.CartService, orders *service.OrderService) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, cart: cart, orders: orders}
}

// mealCard is a catalog entry plus its derived display price.
type mealCard struct {
	domain.MealSummary
	Price float64 `json:"price"`
}

type mealListResponse struct {
	Meals   []mealCard `json:"meals"`
	Message string     `json:"message,omitempty"`
}

type mealDetailResponse struct {
	*domain.Meal
	Price float64 `json:"price"`
}

type cartResponse struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
}

type addItemRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Img   string  `json:"img"`
	Price float64 `json:"price"`
}

type setQtyRequest struct {
	Qty int `json:"qty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories": h.catalog.Categories(r.Context()),
	})
}

func (h *HTTPHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	var (
		meals []domain.MealSummary
		err   error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		meals, err = h.catalog.Search(r.Context(), q)
	} else {
		category := r.URL.Query().Get("category")
		if category == "" {
			category = service.DefaultCategory
		}
		meals, err = h.catalog.Browse(r.Context(), category)
	}
	if err != nil {
		// Catalog failures render as an inert message over an empty
		// result set; they never become transport errors for the client.
		message := "Failed to load meals."
		if errors.Is(err, service.ErrSuperseded) {
			message = "Superseded by a newer request."
		}
		writeJSON(w, http.StatusOK, mealListResponse{Meals: []mealCard{}, Message: message})
		return
	}

	cards := make([]mealCard, 0, len(meals))
	for _, m := range meals {
		cards = append(cards, mealCard{MealSummary: m, Price: domain.PriceFromID(m.ID)})
	}
	writeJSON(w, http.StatusOK, mealListResponse{Meals: cards})
}

func (h *HTTPHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	meal, err := h.catalog.Details(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Failed to load meal details."})
		return
	}
	if meal == nil {
		writeJSON(w, http.StatusNotFound, messageResponse{Message: "Meal not found."})
		return
	}
	writeJSON(w, http.StatusOK, mealDetailResponse{Meal: meal, Price: domain.PriceFromID(meal.ID)})
}

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, http.StatusOK)
}

func (h *HTTPHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid item"})
		return
	}
	if req.Price <= 0 {
		req.Price = domain.PriceFromID(req.ID)
	}

	line := domain.CartLine{ID: req.ID, Name: req.Name, Img: req.Img, Price: req.Price}
	if err := h.cart.Add(r.Context(), line); err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "failed to save cart"})
		return
	}
	h.writeCart(w, http.StatusCreated)
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Unparseable quantities clamp to 1, matching the quantity stepper
	// contract: quantity input is never an error.
	req := setQtyRequest{Qty: 1}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.cart.SetQty(r.Context(), id, req.Qty); err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "failed to save cart"})
		return
	}
	h.writeCart(w, http.StatusOK)
}

func (h *HTTPHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "failed to save cart"})
		return
	}
	h.writeCart(w, http.StatusOK)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "failed to save cart"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid checkout form"})
		return
	}

	order, err := h.orders.Checkout(r.Context(), customer)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			writeJSON(w, http.StatusUnprocessableEntity, messageResponse{Message: "Your cart is empty!"})
			return
		}
		if errors.Is(err, service.ErrInvalidPayment) {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "invalid payment method"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "failed to place order"})
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.Order{
		"orders": h.orders.Orders(r.Context()),
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeCart(w http.ResponseWriter, status int) {
	writeJSON(w, status, cartResponse{Items: h.cart.Lines(), Total: h.cart.Total()})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
