package session

import (
	"crave-delivery/internal/catalog"
	"crave-delivery/internal/checkout"
	"crave-delivery/internal/domain"
	"crave-delivery/internal/nav"
	"crave-delivery/internal/pricing"
)

// View is what a screen renders from: the resolved route plus the data that
// screen needs, assembled purely from the navigation state and the catalog.
type View struct {
	Route   nav.Route   `json:"route"`
	Depth   int         `json:"depth"`
	ShowTab bool        `json:"show_tab"`
	Data    interface{} `json:"data"`
}

// NotFoundView replaces the screen body when an aux id no longer resolves.
type NotFoundView struct {
	Message string `json:"message"`
}

type HomeView struct {
	City       string          `json:"city"`
	Location   string          `json:"location"`
	Categories []string        `json:"categories"`
	Vendors    []domain.Vendor `json:"vendors"`
}

type OrdersView struct {
	Tabs   []string       `json:"tabs"`
	Orders []domain.Order `json:"orders"`
}

type ProfileView struct {
	User domain.User `json:"user"`
}

type VendorDetailView struct {
	Vendor     *domain.Vendor      `json:"vendor"`
	Categories []string            `json:"categories"`
	Cart       map[string]int      `json:"cart"`
	Summary    pricing.CartSummary `json:"summary"`
}

type CheckoutView struct {
	Vendor     *domain.Vendor    `json:"vendor"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
	Coupons    []domain.Coupon   `json:"coupons"`
	CouponID   string            `json:"coupon_id"`
	Addresses  []domain.Address  `json:"addresses"`
	AddressID  string            `json:"address_id"`
	Times      []string          `json:"times"`
	TimeSlot   string            `json:"time_slot"`
	Processing bool              `json:"processing"`
}

type OrderProgressView struct {
	Order *domain.Order  `json:"order"`
	Steps []ProgressStep `json:"steps"`
}

type ProgressStep struct {
	Title     string `json:"title"`
	Time      string `json:"time"`
	Completed bool   `json:"completed"`
	Active    bool   `json:"active"`
}

type ComingSoonView struct {
	Title string `json:"title"`
}

type RunnerView struct {
	Vendor *domain.Vendor       `json:"vendor"`
	Quote  checkout.RunnerQuote `json:"quote"`
}

type WalletView struct {
	Balance      float64              `json:"balance"`
	Transactions []domain.Transaction `json:"transactions"`
}

type CouponsView struct {
	Coupons []domain.Coupon `json:"coupons"`
}

type AddressListView struct {
	Addresses []domain.Address `json:"addresses"`
}

type CitySelectionView struct {
	Current   string             `json:"current"`
	HotCities []string           `json:"hot_cities"`
	Groups    []domain.CityGroup `json:"groups"`
}

type SearchView struct {
	HistoryTags []string `json:"history_tags"`
	HotTags     []string `json:"hot_tags"`
}

type FavoritesView struct {
	Vendors []domain.Vendor `json:"vendors"`
}

type MapModeView struct {
	Vendors []domain.Vendor `json:"vendors"`
}

// homeCategories is the fixed category strip on the home screen.
var homeCategories = []string{"甜点饮品", "超市便利", "蔬菜水果", "看病买药", "跑腿"}

// deliverySteps is the fixed progress timeline the tracking screen animates
// through; real courier telemetry is out of scope.
var deliverySteps = []ProgressStep{
	{Title: "订单已提交", Time: "12:30", Completed: true},
	{Title: "商家已接单", Time: "12:32", Completed: true},
	{Title: "骑手已接单", Time: "12:35", Completed: true},
	{Title: "骑手配送中", Time: "12:40", Completed: true, Active: true},
	{Title: "订单已送达", Time: "预计 13:00"},
}

// Screen resolves the current view. It is a pure function of the active
// route and aux parameters; calling it never mutates session state.
func (s *Session) Screen() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	screen := s.ctrl.ActiveScreen()
	view := View{
		Route:   screen,
		Depth:   s.ctrl.Depth(),
		ShowTab: screen.IsRootTab(),
	}
	view.Data = s.screenDataLocked(screen)
	return view
}

func (s *Session) screenDataLocked(screen nav.Route) interface{} {
	switch screen {
	case nav.RouteHome:
		return HomeView{
			City:       "武汉市",
			Location:   "汉堡王(中山路)",
			Categories: homeCategories,
			Vendors:    s.store.Vendors(catalog.VendorFilter{}),
		}
	case nav.RouteOrders:
		return OrdersView{
			Tabs:   []string{"全部", "进行中", "已完成", "已取消"},
			Orders: s.store.Orders(""),
		}
	case nav.RouteProfile:
		return ProfileView{User: s.store.User()}
	case nav.RouteVendorDetail:
		return s.vendorDetailLocked()
	case nav.RouteCheckout:
		return s.checkoutViewLocked()
	case nav.RouteOrderProgress:
		return s.orderProgressLocked()
	case nav.RouteComingSoon:
		return ComingSoonView{Title: s.ctrl.ComingSoonTitle()}
	case nav.RouteRunnerRequest:
		vendor, _ := s.store.VendorByID(catalog.RunnerVendorID)
		return RunnerView{Vendor: vendor, Quote: checkout.QuoteRunner()}
	case nav.RouteWallet:
		return WalletView{Balance: s.store.User().Balance, Transactions: s.store.Transactions()}
	case nav.RouteCoupons:
		return CouponsView{Coupons: s.store.WalletCoupons()}
	case nav.RouteAddressList, nav.RouteAddressEdit:
		return AddressListView{Addresses: append([]domain.Address(nil), s.addresses...)}
	case nav.RouteCitySelection:
		return CitySelectionView{
			Current:   "武汉市",
			HotCities: s.store.HotCities(),
			Groups:    s.store.CityGroups(),
		}
	case nav.RouteSearch:
		history, hot := s.store.SearchTags()
		return SearchView{HistoryTags: history, HotTags: hot}
	case nav.RouteFavorites:
		return FavoritesView{Vendors: s.store.FavoriteVendors()}
	case nav.RouteMapMode:
		return MapModeView{Vendors: s.store.Vendors(catalog.VendorFilter{Mode: domain.ModePickup})}
	default:
		// settings, notifications, payment_methods render static content.
		return nil
	}
}

func (s *Session) vendorDetailLocked() interface{} {
	vendor, err := s.store.VendorByID(s.ctrl.VendorID())
	if err != nil {
		return NotFoundView{Message: "商家不存在"}
	}
	categories, _ := s.store.MenuCategories(vendor.ID)

	items := map[string]int{}
	if s.cart != nil && s.cart.VendorID() == vendor.ID {
		items = s.cart.Items()
	}
	return VendorDetailView{
		Vendor:     vendor,
		Categories: categories,
		Cart:       items,
		Summary:    pricing.Summarize(vendor, items),
	}
}

func (s *Session) checkoutViewLocked() interface{} {
	payload := s.ctrl.PendingCheckout()
	if payload == nil {
		return NotFoundView{Message: "订单不存在"}
	}
	vendor, err := s.store.VendorByID(payload.VendorID)
	if err != nil {
		return NotFoundView{Message: "商家不存在"}
	}

	b := pricing.Quote(vendor, payload.Items, s.selectedCouponLocked())
	return CheckoutView{
		Vendor:     vendor,
		Breakdown:  b,
		Coupons:    pricing.SortCoupons(s.store.CheckoutCoupons(), b.Subtotal),
		CouponID:   s.checkout.couponID,
		Addresses:  append([]domain.Address(nil), s.addresses...),
		AddressID:  s.checkout.addressID,
		Times:      s.store.DeliveryTimes(),
		TimeSlot:   s.checkout.timeSlot,
		Processing: s.checkout.processing,
	}
}

func (s *Session) orderProgressLocked() interface{} {
	order, err := s.store.OrderByID(s.ctrl.OrderID())
	if err != nil {
		return NotFoundView{Message: "订单不存在"}
	}
	return OrderProgressView{Order: order, Steps: deliverySteps}
}
