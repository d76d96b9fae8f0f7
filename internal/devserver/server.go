// Package devserver implements the storefront REST contract for local
// development and end-to-end tests: a sqlite product catalog, in-memory carts
// and orders, and an HMAC-signed stand-in for the payment gateway.
package devserver

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/VanshChoyal/Sea-Arsh/internal/domain"
)

const anonymousUser = "guest"

type cartItem struct {
	ProductID string `json:"product_id"`
	Qty       int    `json:"qty"`
}

type detailedItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	Total     int64  `json:"total"`
}

type shippingInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
}

type pendingOrder struct {
	UserID     string
	Items      []detailedItem
	Subtotal   int64
	GST        int64
	GrandTotal int64
	Location   shippingInfo
}

type orderRecord struct {
	OrderID   string
	PaymentID string
	Timestamp string
	Items     []detailedItem
	Status    string
}

type contactMessage struct {
	FullName     string `json:"full_name"`
	EmailAddress string `json:"email_address"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
}

type Server struct {
	products *ProductStore
	secret   string

	mu       sync.Mutex
	carts    map[string][]cartItem
	pending  map[string]*pendingOrder
	orders   map[string][]*orderRecord
	messages []contactMessage
}

func NewServer(products *ProductStore, paymentSecret string) *Server {
	return &Server{
		products: products,
		secret:   paymentSecret,
		carts:    make(map[string][]cartItem),
		pending:  make(map[string]*pendingOrder),
		orders:   make(map[string][]*orderRecord),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(userMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/add/cart", s.addToCart)
	r.Post("/api/remove/cart", s.removeFromCart)
	r.Get("/api/cart/get", s.getCart)
	r.Get("/api/product/{id}", s.getProduct)
	r.Post("/create-order", s.createOrder)
	r.Post("/verify-payment", s.verifyPayment)
	r.Get("/api/get-orders", s.getOrders)
	r.Post("/api/cancel-order", s.cancelOrder)
	r.Post("/api/reorder", s.reorder)
	r.Post("/api/save/response", s.saveResponse)

	return r
}

type ctxKey int

const userIDKey ctxKey = 0

// userMiddleware reads the caller identity from the X-User-ID header.
// Requests without one run as the anonymous guest.
func userMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			userID = anonymousUser
		}
		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondJSON(w, http.StatusOK, map[string]bool{"response": false})
		return
	}

	if _, err := s.products.GetProduct(r.Context(), req.ProductID); err != nil {
		respondJSON(w, http.StatusOK, map[string]bool{"response": false})
		return
	}

	userID := userIDFrom(r.Context())
	s.mu.Lock()
	items := s.carts[userID]
	found := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		items = append(items, cartItem{ProductID: req.ProductID, Qty: 1})
	}
	s.carts[userID] = items
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]bool{"response": true})
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondJSON(w, http.StatusOK, map[string]bool{"response": false})
		return
	}

	userID := userIDFrom(r.Context())
	s.mu.Lock()
	items := s.carts[userID]
	removed := false
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Qty--
			if items[i].Qty <= 0 {
				items = append(items[:i], items[i+1:]...)
			}
			removed = true
			break
		}
	}
	s.carts[userID] = items
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]bool{"response": removed})
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())

	s.mu.Lock()
	items := make([]cartItem, len(s.carts[userID]))
	copy(items, s.carts[userID])
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{
		"response": true,
		"cart":     items,
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := s.products.GetProduct(r.Context(), id)
	if err != nil {
		respondJSON(w, http.StatusNotFound, map[string]bool{"response": false})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"response": true,
		"product": map[string]any{
			"name":  product.Name,
			"price": product.Price,
			"image": product.Image,
		},
	})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	if userID == anonymousUser {
		respondError(w, http.StatusBadRequest, "login needed")
		return
	}

	var req struct {
		Cart         []cartItem   `json:"cart"`
		UserLocation shippingInfo `json:"user_location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Cart) == 0 {
		respondError(w, http.StatusBadRequest, "Cart is empty")
		return
	}
	loc := req.UserLocation
	if loc.Name == "" || loc.Phone == "" || loc.Address == "" || loc.Pincode == "" {
		respondError(w, http.StatusBadRequest, "Missing user address fields")
		return
	}

	// Reprice from the catalog; client-sent prices are never trusted.
	var subtotal int64
	items := make([]detailedItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		if item.Qty <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid product in cart")
			return
		}
		product, err := s.products.GetProduct(r.Context(), item.ProductID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid product in cart")
			return
		}
		total := product.Price * int64(item.Qty)
		subtotal += total
		items = append(items, detailedItem{
			ProductID: item.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       item.Qty,
			Total:     total,
		})
	}

	gst := domain.GST(subtotal)
	grand := subtotal + gst
	orderID := "order_" + uuid.NewString()

	s.mu.Lock()
	s.pending[orderID] = &pendingOrder{
		UserID:     userID,
		Items:      items,
		Subtotal:   subtotal,
		GST:        gst,
		GrandTotal: grand,
		Location:   loc,
	}
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]any{
		"id":     orderID,
		"amount": grand,
	})
}

func (s *Server) verifyPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentID string `json:"razorpay_payment_id"`
		OrderID   string `json:"razorpay_order_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		req.PaymentID == "" || req.OrderID == "" || req.Signature == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"status": "failure",
			"error":  "Missing fields",
		})
		return
	}

	s.mu.Lock()
	pending, ok := s.pending[req.OrderID]
	s.mu.Unlock()
	if !ok {
		respondJSON(w, http.StatusBadRequest, map[string]string{
			"status": "failure",
			"error":  "Order not found",
		})
		return
	}

	if !verifySignature(s.secret, req.OrderID, req.PaymentID, req.Signature) {
		log.Printf("payment signature mismatch for order %s", req.OrderID)
		respondJSON(w, http.StatusBadRequest, map[string]string{"status": "failure"})
		return
	}

	record := &orderRecord{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Timestamp: domain.OrderTimestamp(time.Now()),
		Items:     pending.Items,
		Status:    domain.OrderStatusSuccess,
	}

	s.mu.Lock()
	s.orders[pending.UserID] = append(s.orders[pending.UserID], record)
	delete(s.pending, req.OrderID)
	delete(s.carts, pending.UserID)
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) getOrders(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	if userID == anonymousUser {
		respondError(w, http.StatusBadRequest, "Not logged in")
		return
	}
	showCancelled := r.URL.Query().Get("show_cancelled") == "1"

	s.mu.Lock()
	records := make([]*orderRecord, len(s.orders[userID]))
	copy(records, s.orders[userID])
	s.mu.Unlock()

	orders := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		if rec.Status == domain.OrderStatusCancelled && !showCancelled {
			continue
		}
		eta, err := domain.DeliveryETA(rec.Timestamp)
		if err != nil {
			log.Printf("bad order timestamp %q: %v", rec.Timestamp, err)
		}
		items := make([]map[string]any, 0, len(rec.Items))
		for _, item := range rec.Items {
			items = append(items, map[string]any{
				"qty":   item.Qty,
				"name":  item.Name,
				"total": item.Total,
			})
		}
		orders = append(orders, map[string]any{
			"order_id":     rec.OrderID,
			"timestamp":    rec.Timestamp,
			"items":        items,
			"status":       rec.Status,
			"delivery_eta": eta,
		})
	}

	respondJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	if userID == anonymousUser {
		respondError(w, http.StatusBadRequest, "Not logged in")
		return
	}

	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.orders[userID] {
		if rec.OrderID == req.OrderID {
			rec.Status = domain.OrderStatusCancelled
			respondJSON(w, http.StatusOK, map[string]string{"status": domain.OrderStatusCancelled})
			return
		}
	}
	respondError(w, http.StatusNotFound, "Order not found")
}

func (s *Server) reorder(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	if userID == anonymousUser {
		respondError(w, http.StatusBadRequest, "Not logged in")
		return
	}

	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.orders[userID] {
		if rec.OrderID == req.OrderID {
			respondJSON(w, http.StatusOK, map[string]any{"cart": rec.Items})
			return
		}
	}
	respondError(w, http.StatusNotFound, "Order not found")
}

func (s *Server) saveResponse(w http.ResponseWriter, r *http.Request) {
	var msg contactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil ||
		msg.FullName == "" || msg.EmailAddress == "" || msg.Subject == "" || msg.Message == "" {
		respondJSON(w, http.StatusOK, map[string]bool{"success": false})
		return
	}

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
