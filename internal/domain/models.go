package domain

// DeliveryMode is how an order reaches the customer.
type DeliveryMode string

const (
	ModeDelivery DeliveryMode = "delivery"
	ModePickup   DeliveryMode = "pickup"
)

// OrderStatus is a closed enumeration; Label returns the display text the
// app shows for each state.
type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusDelivering     OrderStatus = "DELIVERING"
	StatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	StatusCompleted      OrderStatus = "COMPLETED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

func (s OrderStatus) Label() string {
	switch s {
	case StatusPendingPayment:
		return "待付款"
	case StatusPreparing:
		return "商家准备中"
	case StatusDelivering:
		return "配送中"
	case StatusReadyForPickup:
		return "待取餐"
	case StatusCompleted:
		return "已完成"
	case StatusCancelled:
		return "已取消"
	}
	return string(s)
}

// InProgress reports whether an order is still moving through fulfillment.
func (s OrderStatus) InProgress() bool {
	switch s {
	case StatusPendingPayment, StatusPreparing, StatusDelivering, StatusReadyForPickup:
		return true
	}
	return false
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Sales       int     `json:"sales,omitempty"`
}

type Review struct {
	ID         string `json:"id"`
	UserName   string `json:"user_name"`
	UserAvatar string `json:"user_avatar"`
	Rating     int    `json:"rating"`
	Date       string `json:"date"`
	Content    string `json:"content"`
	Reply      string `json:"reply,omitempty"`
}

type VendorInfo struct {
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	OpeningHours string   `json:"opening_hours"`
	Announcement string   `json:"announcement,omitempty"`
	Services     []string `json:"services"`
}

type Vendor struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Rating            float64    `json:"rating"`
	RatingCount       int        `json:"rating_count"`
	Distance          string     `json:"distance"`
	TimeEstimate      string     `json:"time_estimate"`
	DeliveryFee       float64    `json:"delivery_fee"`
	MinOrderPrice     float64    `json:"min_order_price"`
	Tags              []string   `json:"tags"`
	Image             string     `json:"image"`
	Promotion         string     `json:"promotion,omitempty"`
	IsPickupAvailable bool       `json:"is_pickup_available"`
	Address           string     `json:"address,omitempty"`
	Info              VendorInfo `json:"info"`
	Reviews           []Review   `json:"reviews,omitempty"`
	Menu              []MenuItem `json:"menu,omitempty"`
}

// OrderItem snapshots a line at order time. It is keyed by display name,
// not menu item id; reorder has to match names against the current menu.
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID          string       `json:"id"`
	VendorID    string       `json:"vendor_id"`
	VendorName  string       `json:"vendor_name"`
	VendorImage string       `json:"vendor_image"`
	Items       []OrderItem  `json:"items"`
	TotalAmount float64      `json:"total_amount"`
	Status      OrderStatus  `json:"status"`
	Date        string       `json:"date"`
	Mode        DeliveryMode `json:"mode"`
}

// User is the singleton profile; loaded once, never mutated.
type User struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Avatar  string  `json:"avatar"`
	Balance float64 `json:"balance"`
	Points  int     `json:"points"`
	Coupons int     `json:"coupons"`
}

// Coupon is a user-held voucher with its own minimum-spend threshold,
// independent of vendor promotions.
type Coupon struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Min         float64 `json:"min"`
	Description string  `json:"description"`
	Expiry      string  `json:"expiry,omitempty"`
}

type Address struct {
	ID      string `json:"id"`
	Tag     string `json:"tag"`
	Address string `json:"address"`
	Detail  string `json:"detail"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Gender  string `json:"gender"`
	Default bool   `json:"default,omitempty"`
}

type Transaction struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"` // "income" or "expense"
}

// CityGroup is one letter section of the city picker.
type CityGroup struct {
	Letter string   `json:"letter"`
	Cities []string `json:"cities"`
}

// Receipt is the snapshot produced by a simulated successful payment. It is
// held by the session that placed it and never written back into the
// historical order list.
type Receipt struct {
	OrderID    string       `json:"order_id"`
	VendorID   string       `json:"vendor_id"`
	VendorName string       `json:"vendor_name"`
	Items      []OrderItem  `json:"items"`
	Total      float64      `json:"total"`
	Mode       DeliveryMode `json:"mode"`
	PlacedAt   string       `json:"placed_at"`
	QRCode     []byte       `json:"-"`
}
