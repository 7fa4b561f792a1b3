package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"restomanage/internal/domain"
	"restomanage/internal/service"
)

type Handler struct {
	Dishes    service.DishServiceInterface
	Clients   service.ClientServiceInterface
	Orders    service.OrderServiceInterface
	Analytics service.AnalyticsServiceInterface
}

func NewHandler(dishes service.DishServiceInterface, clients service.ClientServiceInterface,
	orders service.OrderServiceInterface, analytics service.AnalyticsServiceInterface) *Handler {
	return &Handler{
		Dishes:    dishes,
		Clients:   clients,
		Orders:    orders,
		Analytics: analytics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/dishes", h.createDish).Methods("POST")
	r.HandleFunc("/dishes", h.listDishes).Methods("GET")
	r.HandleFunc("/dishes/{id}", h.getDish).Methods("GET")
	r.HandleFunc("/dishes/{id}", h.patchDish).Methods("PATCH")
	r.HandleFunc("/dishes/{id}", h.deleteDish).Methods("DELETE")

	r.HandleFunc("/clients", h.createClient).Methods("POST")
	r.HandleFunc("/clients", h.listClients).Methods("GET")
	r.HandleFunc("/clients/{id}", h.getClient).Methods("GET")
	r.HandleFunc("/clients/{id}", h.patchClient).Methods("PATCH")
	r.HandleFunc("/clients/{id}", h.deleteClient).Methods("DELETE")

	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/analytics/dishes/filter_sql", h.filterDishesSQL).Methods("GET")
	r.HandleFunc("/analytics/clients/{id}/orders_sql", h.clientOrdersSQL).Methods("GET")
	r.HandleFunc("/analytics/dishes/raise_price_sql", h.raisePriceSQL).Methods("POST")
	r.HandleFunc("/analytics/top_clients_by_spend_sql", h.topClientsBySpendSQL).Methods("GET")
	r.HandleFunc("/analytics/orders/{id}/full_sql", h.orderFullSQL).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "restomanage",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func optionalInt(r *http.Request, key string) *int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func optionalFloat(r *http.Request, key string) *float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func optionalString(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func (h *Handler) createDish(w http.ResponseWriter, r *http.Request) {
	var dish domain.Dish
	if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Dishes.Create(&dish); err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func dishFilterFromQuery(r *http.Request) domain.DishFilter {
	return domain.DishFilter{
		MinPrice: optionalFloat(r, "min_price"),
		MaxPrice: optionalFloat(r, "max_price"),
		Category: optionalString(r, "category"),
		SortBy:   r.URL.Query().Get("sort_by"),
		SortDir:  r.URL.Query().Get("sort_dir"),
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
	}
}

func (h *Handler) listDishes(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Dishes.List(dishFilterFromQuery(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	dish, err := h.Dishes.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) patchDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var patch domain.DishPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dish, err := h.Dishes.Patch(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrDishNotFound) {
			http.Error(w, "Dish not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

func (h *Handler) deleteDish(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Dishes.Delete(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrDishNotFound):
			http.Error(w, "Dish not found", http.StatusNotFound)
		case errors.Is(err, service.ErrDishInUse):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var client domain.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Clients.Create(&client); err != nil {
		if errors.Is(err, service.ErrNameRequired) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	filter := domain.ClientFilter{
		Organization: optionalString(r, "organization"),
		MinAge:       optionalInt(r, "min_age"),
		SortBy:       r.URL.Query().Get("sort_by"),
		SortDir:      r.URL.Query().Get("sort_dir"),
		Limit:        queryInt(r, "limit"),
		Offset:       queryInt(r, "offset"),
	}
	clients, err := h.Clients.List(filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	client, err := h.Clients.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			http.Error(w, "Client not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handler) patchClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var patch domain.ClientPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	client, err := h.Clients.Patch(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			http.Error(w, "Client not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Clients.Delete(id); err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			http.Error(w, "Client not found", http.StatusNotFound)
		case errors.Is(err, service.ErrClientInUse):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrClientNotFound):
			http.Error(w, "Client not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrDishNotFound):
			http.Error(w, capitalize(err.Error()), http.StatusNotFound)
		case errors.Is(err, domain.ErrNoItems), errors.Is(err, service.ErrInvalidQuantity):
			http.Error(w, capitalize(err.Error()), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Orders.ReceiptQR(id)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) filterDishesSQL(w http.ResponseWriter, r *http.Request) {
	filter := dishFilterFromQuery(r)
	filter.MinCalories = optionalInt(r, "min_calories")

	dishes, err := h.Analytics.FilterDishes(filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}

func (h *Handler) clientOrdersSQL(w http.ResponseWriter, r *http.Request) {
	clientID, _ := strconv.Atoi(mux.Vars(r)["id"])
	summaries, err := h.Analytics.ClientOrders(clientID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *Handler) raisePriceSQL(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		http.Error(w, "category is required", http.StatusBadRequest)
		return
	}
	minCalories := queryInt(r, "min_calories")
	percent := 10.0
	if p := optionalFloat(r, "percent"); p != nil {
		percent = *p
	}

	result, err := h.Analytics.RaisePrices(r.Context(), category, minCalories, percent)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) topClientsBySpendSQL(w http.ResponseWriter, r *http.Request) {
	spenders, err := h.Analytics.TopClients(r.Context(), queryInt(r, "limit"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, spenders)
}

func (h *Handler) orderFullSQL(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	breakdown, err := h.Analytics.OrderBreakdown(orderID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if breakdown == nil {
		// Compatibility with the legacy report contract: a 200 with a detail
		// payload, not a 404.
		writeJSON(w, http.StatusOK, map[string]string{"detail": "Order not found"})
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}
