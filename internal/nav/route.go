package nav

import "strings"

// Route identifies a screen. The three root tabs reset the history stack;
// every other route stacks on top of it.
type Route string

const (
	RouteHome           Route = "home"
	RouteOrders         Route = "orders"
	RouteProfile        Route = "profile"
	RouteSearch         Route = "search"
	RouteWallet         Route = "wallet"
	RouteCoupons        Route = "coupons"
	RouteAddressList    Route = "address_list"
	RouteAddressEdit    Route = "address_edit"
	RouteMapMode        Route = "map_mode"
	RouteComingSoon     Route = "coming_soon"
	RouteVendorDetail   Route = "vendor_detail"
	RouteCitySelection  Route = "city_selection"
	RouteCheckout       Route = "checkout"
	RouteOrderProgress  Route = "order_progress"
	RouteRunnerRequest  Route = "runner_request"
	RouteSettings       Route = "settings"
	RouteNotifications  Route = "notifications"
	RouteFavorites      Route = "favorites"
	RoutePaymentMethods Route = "payment_methods"
)

func (r Route) IsRootTab() bool {
	return r == RouteHome || r == RouteOrders || r == RouteProfile
}

// Request is a navigation target built at the call site. The colon-encoded
// string tokens of the old contract parse into the same variants via
// ParseToken.
type Request interface {
	navRequest()
}

// VendorRequest opens a vendor page. The runner pseudo-vendor opens the
// runner request flow instead of the menu screen.
type VendorRequest struct {
	ID string
}

// ComingSoonRequest opens the placeholder screen with a title.
type ComingSoonRequest struct {
	Title string
}

// OrderProgressRequest opens progress tracking for one order.
type OrderProgressRequest struct {
	OrderID string
}

// PlainRequest targets a route with no payload.
type PlainRequest struct {
	Route Route
}

func (VendorRequest) navRequest()        {}
func (ComingSoonRequest) navRequest()    {}
func (OrderProgressRequest) navRequest() {}
func (PlainRequest) navRequest()         {}

// ParseToken accepts the legacy "<family>:<payload>" token grammar and is
// total over strings: anything unrecognized becomes a PlainRequest with the
// token used verbatim as the route.
func ParseToken(token string) Request {
	family, payload, found := strings.Cut(token, ":")
	if found {
		switch family {
		case "vendor":
			return VendorRequest{ID: payload}
		case "coming_soon":
			return ComingSoonRequest{Title: payload}
		case "order_progress":
			return OrderProgressRequest{OrderID: payload}
		}
	}
	return PlainRequest{Route: Route(token)}
}
