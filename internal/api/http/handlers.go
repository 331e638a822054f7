package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"crave-delivery/internal/catalog"
	"crave-delivery/internal/checkout"
	"crave-delivery/internal/domain"
	"crave-delivery/internal/nav"
	"crave-delivery/internal/session"
)

type Handler struct {
	Store    *catalog.Store
	Sessions *session.Manager
}

func NewHandler(store *catalog.Store, sessions *session.Manager) *Handler {
	return &Handler{Store: store, Sessions: sessions}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Catalog reads, session-independent.
	r.HandleFunc("/api/vendors", h.getVendors).Methods("GET")
	r.HandleFunc("/api/vendors/{id}", h.getVendor).Methods("GET")
	r.HandleFunc("/api/vendors/{id}/reviews", h.getVendorReviews).Methods("GET")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/profile", h.getProfile).Methods("GET")
	r.HandleFunc("/api/cities", h.getCities).Methods("GET")
	r.HandleFunc("/api/coupons", h.getCoupons).Methods("GET")
	r.HandleFunc("/api/wallet", h.getWallet).Methods("GET")
	r.HandleFunc("/api/favorites", h.getFavorites).Methods("GET")
	r.HandleFunc("/api/search/suggestions", h.getSearchSuggestions).Methods("GET")

	// Session lifecycle and per-session state.
	r.HandleFunc("/api/sessions", h.createSession).Methods("POST")
	s := r.PathPrefix("/api/sessions/{sessionId}").Subrouter()
	s.HandleFunc("/screen", h.getScreen).Methods("GET")
	s.HandleFunc("/navigate", h.navigate).Methods("POST")
	s.HandleFunc("/back", h.back).Methods("POST")
	s.HandleFunc("/city", h.selectCity).Methods("POST")
	s.HandleFunc("/cart/items/{itemId}", h.addCartItem).Methods("POST")
	s.HandleFunc("/cart/items/{itemId}", h.removeCartItem).Methods("DELETE")
	s.HandleFunc("/cart", h.getCartSummary).Methods("GET")
	s.HandleFunc("/cart", h.clearCart).Methods("DELETE")
	s.HandleFunc("/checkout", h.startCheckout).Methods("POST")
	s.HandleFunc("/checkout/coupon", h.selectCoupon).Methods("PUT")
	s.HandleFunc("/checkout/address", h.selectAddress).Methods("PUT")
	s.HandleFunc("/checkout/time", h.selectTime).Methods("PUT")
	s.HandleFunc("/checkout/pay", h.pay).Methods("POST")
	s.HandleFunc("/runner", h.submitRunner).Methods("POST")
	s.HandleFunc("/reorder/{orderId}", h.reorder).Methods("POST")
	s.HandleFunc("/addresses", h.saveAddress).Methods("POST")
	s.HandleFunc("/receipt", h.getReceipt).Methods("GET")
	s.HandleFunc("/receipt/qrcode", h.getReceiptQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "crave-delivery",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getVendors(w http.ResponseWriter, r *http.Request) {
	filter := catalog.VendorFilter{
		Mode:     domain.DeliveryMode(r.URL.Query().Get("mode")),
		Category: r.URL.Query().Get("category"),
		Keyword:  r.URL.Query().Get("q"),
	}
	writeJSON(w, http.StatusOK, h.Store.Vendors(filter))
}

func (h *Handler) getVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.Store.VendorByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}

func (h *Handler) getVendorReviews(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.Store.VendorByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vendor.Reviews)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Orders(r.URL.Query().Get("status")))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Store.OrderByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.User())
}

func (h *Handler) getCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"hot":    h.Store.HotCities(),
		"groups": h.Store.CityGroups(),
	})
}

func (h *Handler) getCoupons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.WalletCoupons())
}

func (h *Handler) getWallet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"balance":      h.Store.User().Balance,
		"transactions": h.Store.Transactions(),
	})
}

func (h *Handler) getFavorites(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.FavoriteVendors())
}

func (h *Handler) getSearchSuggestions(w http.ResponseWriter, r *http.Request) {
	history, hot := h.Store.SearchTags()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"history": history,
		"hot":     hot,
	})
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	s := h.Sessions.Create()
	log.Printf("[session] created %s", s.ID())
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": s.ID()})
}

func (h *Handler) withSession(w http.ResponseWriter, r *http.Request) *session.Session {
	s, err := h.Sessions.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return nil
	}
	return s
}

func (h *Handler) getScreen(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.Navigate(nav.ParseToken(payload.Token))
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	s.Back()
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) selectCity(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var payload struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.SelectCity(payload.City)
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	if err := s.IncrementItem(mux.Vars(r)["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	h.writeCartSummary(w, s)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	if err := s.DecrementItem(mux.Vars(r)["itemId"]); err != nil {
		writeError(w, err)
		return
	}
	h.writeCartSummary(w, s)
}

func (h *Handler) getCartSummary(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	h.writeCartSummary(w, s)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	s.ClearCart()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeCartSummary(w http.ResponseWriter, s *session.Session) {
	summary, err := s.CartSummary()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) startCheckout(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	if err := s.StartCheckout(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) selectCoupon(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var payload struct {
		CouponID string `json:"coupon_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.SelectCoupon(payload.CouponID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) selectAddress(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var payload struct {
		AddressID string `json:"address_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.SelectAddress(payload.AddressID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) selectTime(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var payload struct {
		Slot string `json:"slot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.SelectTime(payload.Slot)
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	if err := s.Pay(); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]bool{"processing": true})
}

func (h *Handler) submitRunner(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var req checkout.RunnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.SubmitRunner(req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	if err := s.Reorder(mux.Vars(r)["orderId"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.Screen())
}

func (h *Handler) saveAddress(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}

	var form checkout.AddressForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	addr, err := s.SaveAddress(form)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	receipt, err := s.Receipt()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) getReceiptQRCode(w http.ResponseWriter, r *http.Request) {
	s := h.withSession(w, r)
	if s == nil {
		return
	}
	receipt, err := s.Receipt()
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(receipt.QRCode)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, catalog.ErrVendorNotFound),
		errors.Is(err, catalog.ErrOrderNotFound),
		errors.Is(err, catalog.ErrMenuItemNotFound),
		errors.Is(err, session.ErrNoReceipt):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, session.ErrNoActiveVendor),
		errors.Is(err, session.ErrNotInCheckout),
		errors.Is(err, session.ErrEmptyCart),
		errors.Is(err, session.ErrUnknownCoupon),
		errors.Is(err, session.ErrUnknownAddress),
		errors.Is(err, nav.ErrItemsUnavailable),
		errors.Is(err, checkout.ErrIncompleteAddress),
		errors.Is(err, checkout.ErrEmptyRunnerRequest):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
