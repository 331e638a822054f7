package checkout

import (
	"errors"
	"strings"
)

// ErrEmptyRunnerRequest blocks submitting an errand with no description.
var ErrEmptyRunnerRequest = errors.New("请输入您想购买的商品信息")

// Runner fee model: flat base plus a per-kilometre rate over a fixed
// estimated distance. Real routing is out of scope.
const (
	runnerBaseFee  = 12.0
	runnerPerKm    = 2.0
	runnerDistance = 3.5
)

// Pseudo cart item ids a runner errand submits to checkout. They resolve to
// nothing in the runner vendor's menu, so the checkout subtotal stays zero
// and only the errand delivery fee is charged.
const (
	RunnerServiceFeeItem     = "RUNNER_SERVICE_FEE"
	RunnerEstimatedGoodsItem = "RUNNER_ESTIMATED_GOODS"
)

// RunnerRequest is the "buy for me" errand form.
type RunnerRequest struct {
	Text       string `json:"text"`
	PickupAddr string `json:"pickup_addr"`
	DropAddr   string `json:"drop_addr"`
}

func (r RunnerRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyRunnerRequest
	}
	return nil
}

// Cart produces the pseudo cart a runner errand checks out with.
func (r RunnerRequest) Cart() map[string]int {
	return map[string]int{
		RunnerServiceFeeItem:     1,
		RunnerEstimatedGoodsItem: 1,
	}
}

// RunnerQuote is the fee estimation card on the runner screen.
type RunnerQuote struct {
	BaseFee       float64 `json:"base_fee"`
	DistanceKm    float64 `json:"distance_km"`
	DistancePrice float64 `json:"distance_price"`
	Total         float64 `json:"total"`
}

func QuoteRunner() RunnerQuote {
	distancePrice := runnerDistance * runnerPerKm
	return RunnerQuote{
		BaseFee:       runnerBaseFee,
		DistanceKm:    runnerDistance,
		DistancePrice: distancePrice,
		Total:         runnerBaseFee + distancePrice,
	}
}
