package catalog

import (
	"errors"
	"strings"

	"crave-delivery/internal/domain"
)

var (
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
)

// RunnerVendorID is the built-in errand service. Navigating to it opens the
// runner request flow instead of a normal menu page.
const RunnerVendorID = "13"

// categoryTags maps each home category to the vendor tags it covers.
var categoryTags = map[string][]string{
	"甜点饮品": {"甜点", "蛋糕", "面包", "奶茶", "冰淇淋", "饮品"},
	"超市便利": {"超市", "便利店", "零食", "日用品"},
	"蔬菜水果": {"水果", "生鲜", "蔬菜", "沙拉", "果切"},
	"看病买药": {"药店", "药品", "医疗", "口罩", "感冒药"},
	"跑腿":   {"跑腿", "帮买", "帮送"},
}

// Store is the read-only reference data the whole app renders from. It is
// seeded once at construction and never mutated; callers receive it by
// injection and may share it freely across goroutines.
type Store struct {
	vendors         []domain.Vendor
	vendorsByID     map[string]*domain.Vendor
	orders          []domain.Order
	ordersByID      map[string]*domain.Order
	user            domain.User
	checkoutCoupons []domain.Coupon
	walletCoupons   []domain.Coupon
	addresses       []domain.Address
	transactions    []domain.Transaction
	hotCities       []string
	cityGroups      []domain.CityGroup
	deliveryTimes   []string
	favoriteIDs     []string
	historyTags     []string
	hotTags         []string
}

func NewStore() *Store {
	s := &Store{
		vendors:         seedVendors(),
		orders:          seedOrders(),
		user:            seedUser(),
		checkoutCoupons: seedCheckoutCoupons(),
		walletCoupons:   seedWalletCoupons(),
		addresses:       seedAddresses(),
		transactions:    seedTransactions(),
		hotCities:       seedHotCities(),
		cityGroups:      seedCityGroups(),
		deliveryTimes:   seedDeliveryTimes(),
		favoriteIDs:     []string{"1", "2", "8", "9"},
		historyTags:     []string{"汉堡王", "奶茶", "麻辣烫", "炸鸡"},
		hotTags:         []string{"蜜雪冰城", "瑞幸咖啡", "肯德基", "一点点", "必胜客", "螺蛳粉"},
	}
	s.vendorsByID = make(map[string]*domain.Vendor, len(s.vendors))
	for i := range s.vendors {
		s.vendorsByID[s.vendors[i].ID] = &s.vendors[i]
	}
	s.ordersByID = make(map[string]*domain.Order, len(s.orders))
	for i := range s.orders {
		s.ordersByID[s.orders[i].ID] = &s.orders[i]
	}
	return s
}

// VendorFilter narrows the home vendor list. Zero value matches everything.
type VendorFilter struct {
	Mode     domain.DeliveryMode
	Category string
	Keyword  string
}

func (s *Store) Vendors(filter VendorFilter) []domain.Vendor {
	var out []domain.Vendor
	for _, v := range s.vendors {
		if filter.Mode == domain.ModePickup && !v.IsPickupAvailable {
			continue
		}
		if filter.Keyword != "" && !matchesKeyword(v, filter.Keyword) {
			continue
		}
		if filter.Category != "" && !matchesCategory(v, filter.Category) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func matchesKeyword(v domain.Vendor, keyword string) bool {
	k := strings.ToLower(keyword)
	if strings.Contains(strings.ToLower(v.Name), k) {
		return true
	}
	for _, tag := range v.Tags {
		if strings.Contains(strings.ToLower(tag), k) {
			return true
		}
	}
	return false
}

func matchesCategory(v domain.Vendor, category string) bool {
	targets, ok := categoryTags[category]
	if !ok {
		return false
	}
	for _, tag := range v.Tags {
		for _, t := range targets {
			if tag == t {
				return true
			}
		}
	}
	return false
}

func (s *Store) VendorByID(id string) (*domain.Vendor, error) {
	v, ok := s.vendorsByID[id]
	if !ok {
		return nil, ErrVendorNotFound
	}
	return v, nil
}

// MenuItem looks an item up within one vendor's menu. Menu item ids are only
// unique per vendor, so the vendor id is part of the key.
func (s *Store) MenuItem(vendorID, itemID string) (*domain.MenuItem, error) {
	v, err := s.VendorByID(vendorID)
	if err != nil {
		return nil, err
	}
	for i := range v.Menu {
		if v.Menu[i].ID == itemID {
			return &v.Menu[i], nil
		}
	}
	return nil, ErrMenuItemNotFound
}

// MenuCategories returns the vendor's category labels in menu order.
// Categories are derived from the items, not declared separately.
func (s *Store) MenuCategories(vendorID string) ([]string, error) {
	v, err := s.VendorByID(vendorID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var categories []string
	for _, item := range v.Menu {
		if !seen[item.Category] {
			seen[item.Category] = true
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

// Orders returns the order history filtered by the list-page buckets:
// "" or "全部", "进行中", "已完成", "已取消".
func (s *Store) Orders(bucket string) []domain.Order {
	if bucket == "" || bucket == "全部" {
		return append([]domain.Order(nil), s.orders...)
	}
	var out []domain.Order
	for _, o := range s.orders {
		switch bucket {
		case "进行中":
			if o.Status.InProgress() {
				out = append(out, o)
			}
		case "已完成":
			if o.Status == domain.StatusCompleted {
				out = append(out, o)
			}
		case "已取消":
			if o.Status == domain.StatusCancelled {
				out = append(out, o)
			}
		}
	}
	return out
}

func (s *Store) OrderByID(id string) (*domain.Order, error) {
	o, ok := s.ordersByID[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *Store) User() domain.User { return s.user }

// CheckoutCoupons is the voucher set offered during checkout.
func (s *Store) CheckoutCoupons() []domain.Coupon {
	return append([]domain.Coupon(nil), s.checkoutCoupons...)
}

// WalletCoupons is the set shown on the coupons wallet page.
func (s *Store) WalletCoupons() []domain.Coupon {
	return append([]domain.Coupon(nil), s.walletCoupons...)
}

func (s *Store) Addresses() []domain.Address {
	return append([]domain.Address(nil), s.addresses...)
}

func (s *Store) Transactions() []domain.Transaction {
	return append([]domain.Transaction(nil), s.transactions...)
}

func (s *Store) HotCities() []string {
	return append([]string(nil), s.hotCities...)
}

func (s *Store) CityGroups() []domain.CityGroup {
	return append([]domain.CityGroup(nil), s.cityGroups...)
}

func (s *Store) DeliveryTimes() []string {
	return append([]string(nil), s.deliveryTimes...)
}

func (s *Store) FavoriteVendors() []domain.Vendor {
	var out []domain.Vendor
	for _, id := range s.favoriteIDs {
		if v, ok := s.vendorsByID[id]; ok {
			out = append(out, *v)
		}
	}
	return out
}

func (s *Store) SearchTags() (history, hot []string) {
	return append([]string(nil), s.historyTags...), append([]string(nil), s.hotTags...)
}
