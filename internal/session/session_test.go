package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crave-delivery/internal/catalog"
	"crave-delivery/internal/checkout"
	"crave-delivery/internal/nav"
)

func newTestManager(delay time.Duration) *Manager {
	store := catalog.NewStore()
	payments := checkout.NewProcessor(delay, "http://localhost:8080")
	return NewManager(store, payments)
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager(time.Millisecond)

	s := m.Create()
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, nav.RouteHome, s.ActiveRoute())

	got, err := m.Get(s.ID())
	assert.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSession_CartFollowsActiveVendor(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	assert.ErrorIs(t, s.IncrementItem("101"), ErrNoActiveVendor)

	s.Navigate(nav.VendorRequest{ID: "1"})
	require.NoError(t, s.IncrementItem("101"))
	require.NoError(t, s.IncrementItem("104"))

	summary, err := s.CartSummary()
	require.NoError(t, err)
	assert.Equal(t, 36.0, summary.RawTotal)
	assert.Equal(t, 15.0, summary.Discount)
	assert.Equal(t, 2, summary.TotalCount)

	// Visiting another vendor starts a fresh cart.
	s.Navigate(nav.VendorRequest{ID: "2"})
	summary, err = s.CartSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCount)
}

func TestSession_StartCheckoutDefaults(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	s.Navigate(nav.VendorRequest{ID: "1"})
	assert.ErrorIs(t, s.StartCheckout(), ErrEmptyCart)

	require.NoError(t, s.IncrementItem("101"))
	require.NoError(t, s.IncrementItem("104"))
	require.NoError(t, s.StartCheckout())
	assert.Equal(t, nav.RouteCheckout, s.ActiveRoute())

	view, ok := s.Screen().Data.(CheckoutView)
	require.True(t, ok)
	// Subtotal 36 qualifies for the ¥8/min-35 coupon, the best usable one.
	assert.Equal(t, "c2", view.CouponID)
	assert.Equal(t, 16.0, view.Breakdown.Total)
	assert.NotEmpty(t, view.AddressID)
	assert.Contains(t, view.TimeSlot, "立即送出")
}

func TestSession_SelectCoupon(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()
	s.Navigate(nav.VendorRequest{ID: "1"})
	require.NoError(t, s.IncrementItem("101"))
	require.NoError(t, s.IncrementItem("104"))
	require.NoError(t, s.StartCheckout())

	assert.ErrorIs(t, s.SelectCoupon("bogus"), ErrUnknownCoupon)

	require.NoError(t, s.SelectCoupon(""))
	view := s.Screen().Data.(CheckoutView)
	assert.Empty(t, view.CouponID)
	assert.Equal(t, 24.0, view.Breakdown.Total)

	// A below-minimum coupon may be selected; it just contributes nothing.
	require.NoError(t, s.SelectCoupon("c3"))
	view = s.Screen().Data.(CheckoutView)
	assert.Equal(t, "c3", view.CouponID)
	assert.Equal(t, 0.0, view.Breakdown.CouponDiscount)
}

func TestSession_PayProducesReceipt(t *testing.T) {
	s := newTestManager(2 * time.Millisecond).Create()
	s.Navigate(nav.VendorRequest{ID: "1"})
	require.NoError(t, s.IncrementItem("101"))
	require.NoError(t, s.IncrementItem("104"))
	require.NoError(t, s.StartCheckout())

	_, err := s.Receipt()
	assert.ErrorIs(t, err, ErrNoReceipt)

	require.NoError(t, s.Pay())
	assert.True(t, s.Processing())

	// Paying again while processing is a no-op, not an error.
	require.NoError(t, s.Pay())

	assert.Eventually(t, func() bool {
		_, err := s.Receipt()
		return err == nil
	}, time.Second, time.Millisecond)

	receipt, err := s.Receipt()
	require.NoError(t, err)
	assert.Equal(t, 16.0, receipt.Total)
	assert.Equal(t, "汉堡王(中山路)", receipt.VendorName)
	assert.NotEmpty(t, receipt.QRCode)

	// Completion lands on the orders tab with the flow state cleared.
	assert.Equal(t, []nav.Route{nav.RouteOrders}, s.History())
	assert.False(t, s.Processing())

	// The order history itself stays the seeded read-only list.
	s.Navigate(nav.VendorRequest{ID: "1"})
	summary, err := s.CartSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCount, "a paid cart is emptied")
}

func TestSession_BackCancelsPendingPayment(t *testing.T) {
	s := newTestManager(20 * time.Millisecond).Create()
	s.Navigate(nav.VendorRequest{ID: "1"})
	require.NoError(t, s.IncrementItem("101"))
	require.NoError(t, s.IncrementItem("104"))
	require.NoError(t, s.StartCheckout())
	require.NoError(t, s.Pay())

	s.Back()
	assert.False(t, s.Processing())

	time.Sleep(60 * time.Millisecond)
	_, err := s.Receipt()
	assert.ErrorIs(t, err, ErrNoReceipt, "a canceled payment never completes")
	assert.Equal(t, nav.RouteVendorDetail, s.ActiveRoute())
}

func TestSession_PayOutsideCheckout(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()
	assert.ErrorIs(t, s.Pay(), ErrNotInCheckout)

	s.Navigate(nav.VendorRequest{ID: "1"})
	assert.ErrorIs(t, s.Pay(), ErrNotInCheckout)
}

func TestSession_Reorder(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()
	s.Navigate(nav.PlainRequest{Route: nav.RouteOrders})

	require.NoError(t, s.Reorder("1001"))
	assert.Equal(t, nav.RouteCheckout, s.ActiveRoute())

	view := s.Screen().Data.(CheckoutView)
	// 双层芝士牛堡 28 + 大份薯条 12, promotion and best coupon applied.
	assert.Equal(t, 40.0, view.Breakdown.Subtotal)
	assert.Equal(t, 15.0, view.Breakdown.VendorDiscount)
	assert.Equal(t, "c2", view.CouponID)

	assert.ErrorIs(t, s.Reorder("9999"), catalog.ErrOrderNotFound)
}

func TestSession_RunnerFlow(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	s.Navigate(nav.VendorRequest{ID: "13"})
	assert.Equal(t, nav.RouteRunnerRequest, s.ActiveRoute())

	err := s.SubmitRunner(checkout.RunnerRequest{Text: "  "})
	assert.ErrorIs(t, err, checkout.ErrEmptyRunnerRequest)
	assert.Equal(t, nav.RouteRunnerRequest, s.ActiveRoute())

	require.NoError(t, s.SubmitRunner(checkout.RunnerRequest{Text: "帮我买一杯咖啡"}))
	assert.Equal(t, nav.RouteCheckout, s.ActiveRoute())

	view := s.Screen().Data.(CheckoutView)
	// The pseudo items resolve to nothing: only the errand fee is billed,
	// less the unconditional coupon.
	assert.Equal(t, 0.0, view.Breakdown.Subtotal)
	assert.Equal(t, 10.0, view.Breakdown.DeliveryFee)
	assert.Equal(t, "c1", view.CouponID)
	assert.Equal(t, 5.0, view.Breakdown.Total)
}

func TestSession_SelectCityShowsComingSoon(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	s.SelectCity("上海市")
	view := s.Screen()
	assert.Equal(t, nav.RouteComingSoon, view.Route)
	assert.Equal(t, ComingSoonView{Title: "上海市暂未开通服务"}, view.Data)

	s.Back()
	assert.Equal(t, nav.RouteHome, s.ActiveRoute())
}

func TestSession_SaveAddress(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	_, err := s.SaveAddress(checkout.AddressForm{Contact: "张伟"})
	assert.ErrorIs(t, err, checkout.ErrIncompleteAddress)

	addr, err := s.SaveAddress(checkout.AddressForm{
		Contact: "张伟", Phone: "13800138000", Address: "光谷软件园", Door: "C6栋301", Tag: "公司",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, addr.ID)

	s.Navigate(nav.PlainRequest{Route: nav.RouteAddressList})
	list := s.Screen().Data.(AddressListView)
	assert.Equal(t, addr.ID, list.Addresses[len(list.Addresses)-1].ID)
}

func TestSession_ScreenNotFoundStates(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	s.Navigate(nav.VendorRequest{ID: "999"})
	assert.Equal(t, NotFoundView{Message: "商家不存在"}, s.Screen().Data)

	s.Navigate(nav.OrderProgressRequest{OrderID: "4242"})
	assert.Equal(t, NotFoundView{Message: "订单不存在"}, s.Screen().Data)

	s.Navigate(nav.OrderProgressRequest{OrderID: "1001"})
	progress := s.Screen().Data.(OrderProgressView)
	assert.Equal(t, "1001", progress.Order.ID)
	assert.NotEmpty(t, progress.Steps)
}

func TestSession_UnknownRouteRendersHome(t *testing.T) {
	s := newTestManager(time.Millisecond).Create()

	s.Navigate(nav.ParseToken("no_such_screen"))
	view := s.Screen()
	assert.Equal(t, nav.RouteHome, view.Route)
	assert.IsType(t, HomeView{}, view.Data)
	assert.Equal(t, 2, view.Depth)
}
