// Package session owns the mutable state of one app instance: navigation,
// the active cart, and the checkout flow. Every mutation goes through a
// session method under the session lock, so a multi-threaded HTTP host still
// serializes state transitions the way a single-threaded UI loop would.
package session

import (
	"errors"
	"sync"
	"time"

	"crave-delivery/internal/cart"
	"crave-delivery/internal/catalog"
	"crave-delivery/internal/checkout"
	"crave-delivery/internal/domain"
	"crave-delivery/internal/nav"
	"crave-delivery/internal/pricing"
)

var (
	ErrNoActiveVendor = errors.New("no active vendor")
	ErrNotInCheckout  = errors.New("not in checkout")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNoReceipt      = errors.New("no receipt")
	ErrUnknownCoupon  = errors.New("unknown coupon")
	ErrUnknownAddress = errors.New("unknown address")
)

// checkoutState is the transient screen state of one checkout visit.
type checkoutState struct {
	couponID   string // empty means no coupon selected
	addressID  string
	timeSlot   string
	processing bool
	payGen     int
	payTimer   *time.Timer
}

// Session is the single logical owner of NavigationState and Cart for one
// app instance.
type Session struct {
	mu sync.Mutex

	id        string
	store     *catalog.Store
	payments  *checkout.Processor
	ctrl      *nav.Controller
	cart      *cart.Cart
	checkout  checkoutState
	addresses []domain.Address
	receipt   *domain.Receipt
}

func newSession(id string, store *catalog.Store, payments *checkout.Processor) *Session {
	return &Session{
		id:        id,
		store:     store,
		payments:  payments,
		ctrl:      nav.NewController(),
		addresses: store.Addresses(),
	}
}

func (s *Session) ID() string { return s.id }

// Navigate moves to a target screen. Leaving the checkout screen suppresses
// any payment confirmation still in flight, and switching to a different
// vendor starts a fresh cart.
func (s *Session) Navigate(req nav.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasCheckout := s.ctrl.ActiveRoute() == nav.RouteCheckout
	s.ctrl.Navigate(req)
	if wasCheckout && s.ctrl.ActiveRoute() != nav.RouteCheckout {
		s.cancelPaymentLocked()
	}

	if r, ok := req.(nav.VendorRequest); ok {
		if s.cart == nil || s.cart.VendorID() != r.ID {
			s.cart = cart.New(r.ID)
		}
	}
}

func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasCheckout := s.ctrl.ActiveRoute() == nav.RouteCheckout
	s.ctrl.Back()
	if wasCheckout && s.ctrl.ActiveRoute() != nav.RouteCheckout {
		s.cancelPaymentLocked()
	}
}

func (s *Session) SelectCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SelectCity(city)
}

// cancelPaymentLocked suppresses a pending payment confirmation. The
// generation bump makes an already-fired timer callback a no-op even if it
// lost the race with Stop.
func (s *Session) cancelPaymentLocked() {
	s.checkout.payGen++
	s.checkout.processing = false
	if s.checkout.payTimer != nil {
		s.checkout.payTimer.Stop()
		s.checkout.payTimer = nil
	}
}

// IncrementItem adds one unit of a menu item to the active vendor's cart.
func (s *Session) IncrementItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.activeCartLocked()
	if err != nil {
		return err
	}
	c.Increment(itemID)
	return nil
}

func (s *Session) DecrementItem(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.activeCartLocked()
	if err != nil {
		return err
	}
	c.Decrement(itemID)
	return nil
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart != nil {
		s.cart.Clear()
	}
}

func (s *Session) activeCartLocked() (*cart.Cart, error) {
	vendorID := s.ctrl.VendorID()
	if vendorID == "" {
		return nil, ErrNoActiveVendor
	}
	if s.cart == nil || s.cart.VendorID() != vendorID {
		s.cart = cart.New(vendorID)
	}
	return s.cart, nil
}

// CartSummary prices the active cart for the vendor-detail bottom bar.
func (s *Session) CartSummary() (pricing.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.activeCartLocked()
	if err != nil {
		return pricing.CartSummary{}, err
	}
	vendor, err := s.store.VendorByID(c.VendorID())
	if err != nil {
		return pricing.CartSummary{}, err
	}
	return pricing.Summarize(vendor, c.Items()), nil
}

// StartCheckout snapshots the active cart into the navigation controller and
// opens the checkout screen with defaults filled in: best usable coupon,
// first address, first delivery slot.
func (s *Session) StartCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.activeCartLocked()
	if err != nil {
		return err
	}
	if c.TotalCount() == 0 {
		return ErrEmptyCart
	}
	s.ctrl.StartCheckout(c.Items())
	s.initCheckoutLocked()
	return nil
}

// SubmitRunner validates an errand request and checks out its pseudo cart.
func (s *Session) SubmitRunner(req checkout.RunnerRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := req.Validate(); err != nil {
		return err
	}
	s.ctrl.StartCheckout(req.Cart())
	s.initCheckoutLocked()
	return nil
}

// Reorder rebuilds a cart from a historical order and opens checkout. Items
// whose names no longer match the vendor's menu are dropped; when nothing
// matches the reorder fails and the user stays where they are.
func (s *Session) Reorder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.store.OrderByID(orderID)
	if err != nil {
		return err
	}
	vendor, err := s.store.VendorByID(order.VendorID)
	if err != nil {
		return err
	}
	if err := s.ctrl.Reorder(order, vendor); err != nil {
		return err
	}
	s.initCheckoutLocked()
	return nil
}

// initCheckoutLocked seeds the checkout screen state for a fresh visit.
func (s *Session) initCheckoutLocked() {
	s.checkout.couponID = ""
	s.checkout.timeSlot = ""
	s.checkout.addressID = ""
	s.checkout.processing = false

	if times := s.store.DeliveryTimes(); len(times) > 0 {
		s.checkout.timeSlot = times[0]
	}
	if len(s.addresses) > 0 {
		s.checkout.addressID = s.addresses[0].ID
	}

	payload := s.ctrl.PendingCheckout()
	if payload == nil {
		return
	}
	vendor, err := s.store.VendorByID(payload.VendorID)
	if err != nil {
		return
	}
	subtotal := pricing.Quote(vendor, payload.Items, nil).Subtotal
	if best := pricing.BestCoupon(s.store.CheckoutCoupons(), subtotal); best != nil {
		s.checkout.couponID = best.ID
	}
}

// SelectCoupon picks a coupon for the current checkout; empty id means "no
// coupon". An unusable coupon may still be selected; it just contributes
// zero discount until the subtotal reaches its minimum.
func (s *Session) SelectCoupon(couponID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.ActiveRoute() != nav.RouteCheckout {
		return ErrNotInCheckout
	}
	if couponID != "" && s.findCoupon(couponID) == nil {
		return ErrUnknownCoupon
	}
	s.checkout.couponID = couponID
	return nil
}

func (s *Session) findCoupon(id string) *domain.Coupon {
	coupons := s.store.CheckoutCoupons()
	for i := range coupons {
		if coupons[i].ID == id {
			return &coupons[i]
		}
	}
	return nil
}

func (s *Session) SelectAddress(addressID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.addresses {
		if a.ID == addressID {
			s.checkout.addressID = addressID
			return nil
		}
	}
	return ErrUnknownAddress
}

func (s *Session) SelectTime(slot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkout.timeSlot = slot
}

// SaveAddress validates and stores a new address book entry for this
// session. Validation failure saves nothing; the caller keeps the partial
// form for correction.
func (s *Session) SaveAddress(form checkout.AddressForm) (domain.Address, error) {
	if err := form.Validate(); err != nil {
		return domain.Address{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	addr := form.ToAddress()
	s.addresses = append(s.addresses, addr)
	return addr, nil
}

// Pay starts the simulated payment. The confirmation fires after the
// processor's delay; the session stays responsive in between, and backing
// out of the checkout screen before the delay elapses suppresses the
// completion entirely.
func (s *Session) Pay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctrl.ActiveRoute() != nav.RouteCheckout {
		return ErrNotInCheckout
	}
	if s.ctrl.PendingCheckout() == nil {
		return ErrEmptyCart
	}
	if s.checkout.processing {
		return nil
	}

	s.checkout.processing = true
	s.checkout.payGen++
	gen := s.checkout.payGen
	s.checkout.payTimer = s.payments.Schedule(func() {
		s.completePayment(gen)
	})
	return nil
}

func (s *Session) completePayment(gen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Stale confirmation: the user navigated away while it was in flight.
	if gen != s.checkout.payGen || !s.checkout.processing {
		return
	}
	s.checkout.processing = false
	s.checkout.payTimer = nil

	payload := s.ctrl.PendingCheckout()
	if payload == nil {
		return
	}
	vendor, err := s.store.VendorByID(payload.VendorID)
	if err != nil {
		return
	}

	b := pricing.Quote(vendor, payload.Items, s.selectedCouponLocked())
	mode := domain.ModeDelivery
	receipt, err := s.payments.Receipt(vendor, b, mode)
	if err == nil {
		s.receipt = receipt
	}

	if s.cart != nil && s.cart.VendorID() == payload.VendorID {
		s.cart.Clear()
	}
	s.ctrl.CompleteOrder()
}

func (s *Session) selectedCouponLocked() *domain.Coupon {
	if s.checkout.couponID == "" {
		return nil
	}
	return s.findCoupon(s.checkout.couponID)
}

// Receipt returns the snapshot of the most recently placed order.
func (s *Session) Receipt() (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.receipt == nil {
		return nil, ErrNoReceipt
	}
	return s.receipt, nil
}

func (s *Session) Processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout.processing
}

// History exposes the route stack, oldest first.
func (s *Session) History() []nav.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.History()
}

func (s *Session) ActiveRoute() nav.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.ActiveRoute()
}
