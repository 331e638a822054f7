// Package pricing computes the monetary breakdown of a cart. Every function
// is pure; recomputing from the same inputs always yields the same result.
package pricing

import (
	"regexp"
	"sort"
	"strconv"

	"crave-delivery/internal/domain"
)

// promotionPattern matches threshold promotions of the form "满30减15".
// Any other promotion text (e.g. free-item offers) carries no discount.
var promotionPattern = regexp.MustCompile(`满(\d+)减(\d+)`)

// ParsePromotion extracts the threshold and discount from a vendor's
// promotion text. ok is false when the text is not a threshold promotion.
func ParsePromotion(text string) (threshold, discount float64, ok bool) {
	m := promotionPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	t, _ := strconv.Atoi(m[1])
	d, _ := strconv.Atoi(m[2])
	return float64(t), float64(d), true
}

// Line is one resolved cart entry in a breakdown.
type Line struct {
	Item     domain.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Breakdown is the full bill for a cart at one vendor.
type Breakdown struct {
	Lines          []Line  `json:"lines"`
	Subtotal       float64 `json:"subtotal"`
	DeliveryFee    float64 `json:"delivery_fee"`
	VendorDiscount float64 `json:"vendor_discount"`
	PromotionLabel string  `json:"promotion_label,omitempty"`
	CouponDiscount float64 `json:"coupon_discount"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"item_count"`
}

// Saved is the combined discount shown as "已优惠".
func (b Breakdown) Saved() float64 { return b.VendorDiscount + b.CouponDiscount }

// OriginalTotal is the pre-discount figure shown struck through.
func (b Breakdown) OriginalTotal() float64 { return b.Subtotal + b.DeliveryFee }

// Quote prices a cart against a vendor's menu. Cart entries whose item id
// does not resolve in the menu contribute nothing and are excluded from the
// line list; a stale cart after a reorder must not inflate the bill. The
// selected coupon may be nil; a coupon below its minimum contributes zero
// rather than being swapped for another. Total never goes below zero.
func Quote(vendor *domain.Vendor, items map[string]int, coupon *domain.Coupon) Breakdown {
	b := Breakdown{DeliveryFee: vendor.DeliveryFee}

	byID := make(map[string]domain.MenuItem, len(vendor.Menu))
	for _, item := range vendor.Menu {
		byID[item.ID] = item
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		qty := items[id]
		item, ok := byID[id]
		if !ok || qty <= 0 {
			continue
		}
		b.Lines = append(b.Lines, Line{Item: item, Quantity: qty})
		b.Subtotal += item.Price * float64(qty)
	}
	for _, qty := range items {
		b.ItemCount += qty
	}

	if threshold, discount, ok := ParsePromotion(vendor.Promotion); ok && b.Subtotal >= threshold {
		b.VendorDiscount = discount
		b.PromotionLabel = vendor.Promotion
	}

	if coupon != nil && b.Subtotal >= coupon.Min {
		b.CouponDiscount = coupon.Amount
	}

	b.Total = b.Subtotal + b.DeliveryFee - b.VendorDiscount - b.CouponDiscount
	if b.Total < 0 {
		b.Total = 0
	}
	return b
}

// BestCoupon picks the coupon the engine auto-selects for the user: the
// usable one with the largest discount. Ties keep the earlier coupon in the
// input order, so identical inputs always pick the same coupon. Returns nil
// when no coupon is usable at this subtotal.
func BestCoupon(coupons []domain.Coupon, subtotal float64) *domain.Coupon {
	var best *domain.Coupon
	for i := range coupons {
		c := &coupons[i]
		if subtotal < c.Min {
			continue
		}
		if best == nil || c.Amount > best.Amount {
			best = c
		}
	}
	return best
}

// SortCoupons orders coupons the way the checkout selector lists them:
// usable ones first, then by discount descending. The sort is stable so
// equal coupons keep their seed order.
func SortCoupons(coupons []domain.Coupon, subtotal float64) []domain.Coupon {
	out := append([]domain.Coupon(nil), coupons...)
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := subtotal >= out[i].Min, subtotal >= out[j].Min
		if ai != aj {
			return ai
		}
		return out[i].Amount > out[j].Amount
	})
	return out
}

// CartSummary is the vendor-detail bottom bar figure: raw item total, the
// vendor promotion applied if reached, no delivery fee. Floored at zero.
type CartSummary struct {
	RawTotal   float64 `json:"raw_total"`
	Discount   float64 `json:"discount"`
	FinalPrice float64 `json:"final_price"`
	TotalCount int     `json:"total_count"`
}

func Summarize(vendor *domain.Vendor, items map[string]int) CartSummary {
	var s CartSummary
	byID := make(map[string]domain.MenuItem, len(vendor.Menu))
	for _, item := range vendor.Menu {
		byID[item.ID] = item
	}
	for id, qty := range items {
		s.TotalCount += qty
		if item, ok := byID[id]; ok {
			s.RawTotal += item.Price * float64(qty)
		}
	}
	if threshold, discount, ok := ParsePromotion(vendor.Promotion); ok && s.RawTotal >= threshold {
		s.Discount = discount
	}
	s.FinalPrice = s.RawTotal - s.Discount
	if s.FinalPrice < 0 {
		s.FinalPrice = 0
	}
	return s
}
