package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"crave-delivery/internal/domain"
	"crave-delivery/internal/pricing"
)

// Processor simulates the payment confirmation step. Confirmation is not
// instant: Schedule fires the callback after the configured delay without
// blocking the caller. The caller is responsible for ignoring the callback
// if the user has navigated away in the meantime.
type Processor struct {
	Delay     time.Duration
	QRBaseURL string
	now       func() time.Time
}

func NewProcessor(delay time.Duration, qrBaseURL string) *Processor {
	return &Processor{Delay: delay, QRBaseURL: qrBaseURL, now: time.Now}
}

func (p *Processor) Schedule(fire func()) *time.Timer {
	return time.AfterFunc(p.Delay, fire)
}

// Receipt builds the placed-order snapshot for a paid checkout. The order id
// is freshly generated and the QR code points at the receipt lookup URL, the
// same way the dish QR flow encodes its check link.
func (p *Processor) Receipt(vendor *domain.Vendor, b pricing.Breakdown, mode domain.DeliveryMode) (*domain.Receipt, error) {
	r := &domain.Receipt{
		OrderID:    uuid.New().String(),
		VendorID:   vendor.ID,
		VendorName: vendor.Name,
		Total:      b.Total,
		Mode:       mode,
		PlacedAt:   p.now().Format("2006-01-02 15:04"),
	}
	for _, line := range b.Lines {
		r.Items = append(r.Items, domain.OrderItem{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}

	qrData := fmt.Sprintf("%s/api/receipts/%s", p.QRBaseURL, r.OrderID)
	png, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode receipt qr: %w", err)
	}
	r.QRCode = png
	return r, nil
}
