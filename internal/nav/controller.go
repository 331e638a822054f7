// Package nav owns the navigation state of one app session: a history stack
// of routes plus the transient parameters screens hand each other (active
// vendor, active order, coming-soon title, pending checkout payload).
//
// The controller is not safe for concurrent use on its own; its owner must
// serialize calls (the session does so under its lock).
package nav

import (
	"errors"
	"fmt"

	"crave-delivery/internal/domain"
)

// ErrItemsUnavailable is returned by Reorder when none of the historical
// line items match the vendor's current menu.
var ErrItemsUnavailable = errors.New("商品已下架，无法一键再来")

// runnerVendorID is the built-in errand service; vendor navigation to it is
// rerouted to the runner request screen, and checkouts started from that
// screen are attributed to it.
const runnerVendorID = "13"

// CheckoutPayload is the immutable cart snapshot handed to the checkout
// screen.
type CheckoutPayload struct {
	VendorID string
	Items    map[string]int
}

// Controller implements the navigation contract. The history stack is never
// empty; the last element is the active screen.
type Controller struct {
	history []Route

	comingSoonTitle string
	vendorID        string
	orderID         string
	pendingCheckout *CheckoutPayload
}

func NewController() *Controller {
	return &Controller{history: []Route{RouteHome}}
}

// ActiveRoute is the top of the history stack.
func (c *Controller) ActiveRoute() Route {
	return c.history[len(c.history)-1]
}

// History returns a copy of the stack, oldest first.
func (c *Controller) History() []Route {
	return append([]Route(nil), c.history...)
}

func (c *Controller) Depth() int { return len(c.history) }

func (c *Controller) ComingSoonTitle() string { return c.comingSoonTitle }
func (c *Controller) VendorID() string        { return c.vendorID }
func (c *Controller) OrderID() string         { return c.orderID }

// PendingCheckout returns the snapshot captured by StartCheckout, or nil
// outside a checkout flow.
func (c *Controller) PendingCheckout() *CheckoutPayload {
	if c.pendingCheckout == nil {
		return nil
	}
	items := make(map[string]int, len(c.pendingCheckout.Items))
	for id, qty := range c.pendingCheckout.Items {
		items[id] = qty
	}
	return &CheckoutPayload{VendorID: c.pendingCheckout.VendorID, Items: items}
}

// Navigate resolves a request and moves to the target. Root tabs reset the
// stack to a single element; other targets push unless already active, so
// repeating a navigation is a no-op.
func (c *Controller) Navigate(req Request) {
	var target Route

	switch r := req.(type) {
	case VendorRequest:
		if r.ID == runnerVendorID {
			target = RouteRunnerRequest
		} else {
			c.vendorID = r.ID
			target = RouteVendorDetail
		}
	case ComingSoonRequest:
		c.comingSoonTitle = r.Title
		target = RouteComingSoon
	case OrderProgressRequest:
		c.orderID = r.OrderID
		target = RouteOrderProgress
	case PlainRequest:
		target = r.Route
	default:
		target = RouteHome
	}

	if target.IsRootTab() {
		c.history = []Route{target}
		return
	}
	if target != c.ActiveRoute() {
		c.history = append(c.history, target)
	}
}

// Back pops one screen. A depth-1 stack is left untouched; the controller
// never empties.
func (c *Controller) Back() {
	if len(c.history) > 1 {
		c.history = c.history[:len(c.history)-1]
	}
}

// SelectCity simulates "service not available" for every city: always lands
// on coming_soon with a derived title, always pushed on top of the current
// stack regardless of city validity.
func (c *Controller) SelectCity(city string) {
	c.comingSoonTitle = fmt.Sprintf("%s暂未开通服务", city)
	c.history = append(c.history, RouteComingSoon)
}

// StartCheckout snapshots the cart and pushes the checkout screen. Checkouts
// started from the runner request screen are attributed to the runner
// pseudo-vendor so one checkout screen serves both flows.
func (c *Controller) StartCheckout(items map[string]int) {
	vendorID := c.vendorID
	if c.ActiveRoute() == RouteRunnerRequest {
		vendorID = runnerVendorID
	}
	snapshot := make(map[string]int, len(items))
	for id, qty := range items {
		snapshot[id] = qty
	}
	c.pendingCheckout = &CheckoutPayload{VendorID: vendorID, Items: snapshot}
	c.Navigate(PlainRequest{Route: RouteCheckout})
}

// CompleteOrder ends a checkout flow: the payload is dropped and the user
// lands on the orders tab.
func (c *Controller) CompleteOrder() {
	c.pendingCheckout = nil
	c.history = []Route{RouteOrders}
}

// AbandonCheckout drops the pending payload without navigating; used when
// the user backs out of the checkout screen.
func (c *Controller) AbandonCheckout() {
	c.pendingCheckout = nil
}

// Reorder rebuilds a cart from a historical order. Line items are matched by
// display name against the vendor's current menu because historical orders
// do not store item ids; renamed or delisted items are silently dropped.
// When nothing matches, the reorder fails and no navigation happens.
func (c *Controller) Reorder(order *domain.Order, vendor *domain.Vendor) error {
	byName := make(map[string]string, len(vendor.Menu))
	for _, item := range vendor.Menu {
		byName[item.Name] = item.ID
	}

	items := make(map[string]int)
	for _, line := range order.Items {
		if id, ok := byName[line.Name]; ok {
			items[id] = line.Quantity
		}
	}
	if len(items) == 0 {
		return ErrItemsUnavailable
	}

	c.pendingCheckout = &CheckoutPayload{VendorID: order.VendorID, Items: items}
	c.Navigate(PlainRequest{Route: RouteCheckout})
	return nil
}

// ActiveScreen maps the active route to the screen that should render.
// Unknown routes fall back to the home screen; the stack keeps the route as
// pushed, so Back still behaves.
func (c *Controller) ActiveScreen() Route {
	switch r := c.ActiveRoute(); r {
	case RouteHome, RouteOrders, RouteProfile, RouteSearch, RouteWallet,
		RouteCoupons, RouteAddressList, RouteAddressEdit, RouteMapMode,
		RouteComingSoon, RouteVendorDetail, RouteCitySelection, RouteCheckout,
		RouteOrderProgress, RouteRunnerRequest, RouteSettings,
		RouteNotifications, RouteFavorites, RoutePaymentMethods:
		return r
	default:
		return RouteHome
	}
}
