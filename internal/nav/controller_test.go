package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crave-delivery/internal/domain"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Request
	}{
		{name: "plain_route", token: "wallet", want: PlainRequest{Route: RouteWallet}},
		{name: "vendor", token: "vendor:1", want: VendorRequest{ID: "1"}},
		{name: "coming_soon", token: "coming_soon:开发中", want: ComingSoonRequest{Title: "开发中"}},
		{name: "order_progress", token: "order_progress:1001", want: OrderProgressRequest{OrderID: "1001"}},
		{name: "unknown_family", token: "mystery:42", want: PlainRequest{Route: "mystery:42"}},
		{name: "empty", token: "", want: PlainRequest{Route: ""}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, ParseToken(testCase.token))
		})
	}
}

func TestController_StartsOnHome(t *testing.T) {
	c := NewController()
	assert.Equal(t, RouteHome, c.ActiveRoute())
	assert.Equal(t, 1, c.Depth())
}

func TestController_RootTabResetsStack(t *testing.T) {
	c := NewController()
	c.Navigate(PlainRequest{Route: RouteSearch})
	c.Navigate(VendorRequest{ID: "1"})
	assert.Equal(t, 3, c.Depth())

	c.Navigate(PlainRequest{Route: RouteOrders})
	assert.Equal(t, []Route{RouteOrders}, c.History())

	c.Navigate(PlainRequest{Route: RouteProfile})
	assert.Equal(t, []Route{RouteProfile}, c.History())
}

func TestController_PushIsIdempotent(t *testing.T) {
	c := NewController()
	c.Navigate(PlainRequest{Route: RouteSearch})
	c.Navigate(PlainRequest{Route: RouteSearch})
	c.Navigate(PlainRequest{Route: RouteSearch})

	assert.Equal(t, []Route{RouteHome, RouteSearch}, c.History())
}

func TestController_BackFloorsAtOne(t *testing.T) {
	c := NewController()
	c.Navigate(PlainRequest{Route: RouteSearch})

	c.Back()
	assert.Equal(t, RouteHome, c.ActiveRoute())

	c.Back()
	c.Back()
	assert.Equal(t, []Route{RouteHome}, c.History())
}

func TestController_RunnerVendorOpensRunnerRequest(t *testing.T) {
	c := NewController()
	c.Navigate(VendorRequest{ID: "13"})

	assert.Equal(t, RouteRunnerRequest, c.ActiveRoute())
	assert.Empty(t, c.VendorID(), "the runner pseudo-vendor never becomes the active vendor")

	c = NewController()
	c.Navigate(VendorRequest{ID: "1"})
	assert.Equal(t, RouteVendorDetail, c.ActiveRoute())
	assert.Equal(t, "1", c.VendorID())
}

func TestController_SelectCityAlwaysPushesComingSoon(t *testing.T) {
	c := NewController()
	c.SelectCity("上海市")
	assert.Equal(t, RouteComingSoon, c.ActiveRoute())
	assert.Equal(t, "上海市暂未开通服务", c.ComingSoonTitle())

	// Pushed even while already on coming_soon, so Back retraces each pick.
	c.SelectCity("深圳市")
	assert.Equal(t, "深圳市暂未开通服务", c.ComingSoonTitle())
	assert.Equal(t, []Route{RouteHome, RouteComingSoon, RouteComingSoon}, c.History())
}

func TestController_UnknownRouteRendersHome(t *testing.T) {
	c := NewController()
	c.Navigate(ParseToken("no_such_screen"))

	assert.Equal(t, Route("no_such_screen"), c.ActiveRoute(), "the stack keeps the token verbatim")
	assert.Equal(t, RouteHome, c.ActiveScreen())

	c.Back()
	assert.Equal(t, RouteHome, c.ActiveRoute())
}

func TestController_StartCheckoutSnapshotsCart(t *testing.T) {
	c := NewController()
	c.Navigate(VendorRequest{ID: "1"})

	items := map[string]int{"101": 1, "104": 2}
	c.StartCheckout(items)

	assert.Equal(t, RouteCheckout, c.ActiveRoute())
	payload := c.PendingCheckout()
	assert.Equal(t, "1", payload.VendorID)
	assert.Equal(t, map[string]int{"101": 1, "104": 2}, payload.Items)

	// Later cart edits must not leak into the snapshot.
	items["101"] = 9
	assert.Equal(t, 1, c.PendingCheckout().Items["101"])
}

func TestController_RunnerCheckoutAttribution(t *testing.T) {
	c := NewController()
	c.Navigate(VendorRequest{ID: "1"})
	c.Navigate(VendorRequest{ID: "13"})
	assert.Equal(t, RouteRunnerRequest, c.ActiveRoute())

	c.StartCheckout(map[string]int{"RUNNER_SERVICE_FEE": 1})
	assert.Equal(t, "13", c.PendingCheckout().VendorID)
}

func TestController_CompleteOrder(t *testing.T) {
	c := NewController()
	c.Navigate(VendorRequest{ID: "1"})
	c.StartCheckout(map[string]int{"101": 1})

	c.CompleteOrder()
	assert.Equal(t, []Route{RouteOrders}, c.History())
	assert.Nil(t, c.PendingCheckout())
}

func TestController_Reorder(t *testing.T) {
	vendor := &domain.Vendor{
		ID: "1",
		Menu: []domain.MenuItem{
			{ID: "101", Name: "皇堡", Price: 24},
			{ID: "104", Name: "大份薯条", Price: 12},
		},
	}
	order := &domain.Order{
		ID:       "1001",
		VendorID: "1",
		Items: []domain.OrderItem{
			{Name: "皇堡", Quantity: 2},
			{Name: "停售的老汉堡", Quantity: 1},
		},
	}

	c := NewController()
	err := c.Reorder(order, vendor)
	assert.NoError(t, err)
	assert.Equal(t, RouteCheckout, c.ActiveRoute())
	assert.Equal(t, map[string]int{"101": 2}, c.PendingCheckout().Items, "delisted items drop silently")
}

func TestController_ReorderNothingMatches(t *testing.T) {
	vendor := &domain.Vendor{ID: "1", Menu: []domain.MenuItem{{ID: "101", Name: "皇堡"}}}
	order := &domain.Order{ID: "1001", VendorID: "1", Items: []domain.OrderItem{{Name: "停售的老汉堡", Quantity: 1}}}

	c := NewController()
	err := c.Reorder(order, vendor)
	assert.ErrorIs(t, err, ErrItemsUnavailable)
	assert.Equal(t, RouteHome, c.ActiveRoute(), "a failed reorder never navigates")
	assert.Nil(t, c.PendingCheckout())
}
