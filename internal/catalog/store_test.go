package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"crave-delivery/internal/domain"
)

func TestStore_VendorByID(t *testing.T) {
	s := NewStore()

	v, err := s.VendorByID("1")
	assert.NoError(t, err)
	assert.Equal(t, "汉堡王(中山路)", v.Name)
	assert.Equal(t, "满30减15", v.Promotion)

	_, err = s.VendorByID("999")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestStore_Vendors_Filters(t *testing.T) {
	s := NewStore()

	all := s.Vendors(VendorFilter{})
	assert.Len(t, all, 14)

	pickup := s.Vendors(VendorFilter{Mode: domain.ModePickup})
	assert.NotEmpty(t, pickup)
	for _, v := range pickup {
		assert.True(t, v.IsPickupAvailable)
	}

	byKeyword := s.Vendors(VendorFilter{Keyword: "汉堡"})
	assert.NotEmpty(t, byKeyword)
	found := false
	for _, v := range byKeyword {
		if v.ID == "1" {
			found = true
		}
	}
	assert.True(t, found, "keyword matches name or tags")

	byCategory := s.Vendors(VendorFilter{Category: "跑腿"})
	if assert.Len(t, byCategory, 1) {
		assert.Equal(t, RunnerVendorID, byCategory[0].ID)
	}

	assert.Empty(t, s.Vendors(VendorFilter{Category: "无此分类"}))
}

func TestStore_MenuItem(t *testing.T) {
	s := NewStore()

	item, err := s.MenuItem("1", "101")
	assert.NoError(t, err)
	assert.Equal(t, "皇堡", item.Name)
	assert.Equal(t, 24.0, item.Price)

	_, err = s.MenuItem("1", "201")
	assert.ErrorIs(t, err, ErrMenuItemNotFound, "item ids are scoped per vendor")

	_, err = s.MenuItem("999", "101")
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestStore_MenuCategories(t *testing.T) {
	s := NewStore()

	categories, err := s.MenuCategories("1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"必点主食", "小食甜点", "快乐肥宅水"}, categories)
}

func TestStore_Orders_Buckets(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name    string
		bucket  string
		wantIDs []string
	}{
		{name: "all_default", bucket: "", wantIDs: []string{"1001", "1002", "1003"}},
		{name: "all_explicit", bucket: "全部", wantIDs: []string{"1001", "1002", "1003"}},
		{name: "in_progress", bucket: "进行中", wantIDs: []string{"1001"}},
		{name: "completed", bucket: "已完成", wantIDs: []string{"1002"}},
		{name: "cancelled", bucket: "已取消", wantIDs: []string{"1003"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := s.Orders(testCase.bucket)
			ids := make([]string, len(orders))
			for i, o := range orders {
				ids[i] = o.ID
			}
			assert.Equal(t, testCase.wantIDs, ids)
		})
	}
}

func TestStore_OrderByID(t *testing.T) {
	s := NewStore()

	order, err := s.OrderByID("1001")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, order.Status)
	assert.True(t, order.Status.InProgress())

	_, err = s.OrderByID("9999")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestStore_FavoriteVendors(t *testing.T) {
	s := NewStore()

	favorites := s.FavoriteVendors()
	ids := make([]string, len(favorites))
	for i, v := range favorites {
		ids[i] = v.ID
	}
	assert.Equal(t, []string{"1", "2", "8", "9"}, ids)
}

func TestStore_ReferenceLists(t *testing.T) {
	s := NewStore()

	assert.Equal(t, "张伟", s.User().Name)
	assert.Len(t, s.CheckoutCoupons(), 3)
	assert.Len(t, s.WalletCoupons(), 3)
	assert.NotEmpty(t, s.Addresses())
	assert.NotEmpty(t, s.HotCities())
	assert.Len(t, s.CityGroups(), 13)
	assert.NotEmpty(t, s.DeliveryTimes())
	assert.Contains(t, s.DeliveryTimes()[0], "立即送出")

	history, hot := s.SearchTags()
	assert.NotEmpty(t, history)
	assert.NotEmpty(t, hot)
}
