// AngelaMos | 2026
// calculator.go

package fees

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/carterperez-dev/etsy-dashboard-api/internal/core"
)

// Marketplace fee schedule, effective 2024-12-19.
const (
	TransactionRate       = 0.065
	ListingFee            = 0.20
	PaymentProcessingRate = 0.03
	PaymentProcessingFlat = 0.25
	OffsiteAdsRate        = 0.15
)

// ErrOverflow reports a result that left the float64 range. Inputs that
// trigger it are valid, so it is not core.ErrInvalidInput.
var ErrOverflow = errors.New("fee calculation overflow")

type Input struct {
	SalePrice      float64
	ProductionCost float64
	ShippingCost   float64
	OffsiteAds     bool
}

type Breakdown struct {
	TransactionFee    float64 `json:"transaction_fee"`
	ListingFee        float64 `json:"listing_fee"`
	PaymentProcessing float64 `json:"payment_processing"`
	OffsiteAds        float64 `json:"offsite_ads"`
	TotalFees         float64 `json:"total_fees"`
}

type Result struct {
	Fees         Breakdown `json:"fees"`
	NetRevenue   float64   `json:"net_revenue"`
	TotalCosts   float64   `json:"total_costs"`
	Profit       float64   `json:"profit"`
	ProfitMargin float64   `json:"profit_margin"`
}

// Calculate splits a sale into marketplace fees and what is left after
// production and shipping. Every monetary figure is rounded to cents as it
// is produced, so later steps work on rounded values.
func Calculate(in Input) (Result, error) {
	if err := in.validate(); err != nil {
		return Result{}, err
	}

	transaction := round(in.SalePrice*TransactionRate, 2)
	payment := round(in.SalePrice*PaymentProcessingRate+PaymentProcessingFlat, 2)

	var offsite float64
	if in.OffsiteAds {
		offsite = round(in.SalePrice*OffsiteAdsRate, 2)
	}

	totalFees := round(transaction+ListingFee+payment+offsite, 2)
	netRevenue := round(in.SalePrice-totalFees, 2)
	totalCosts := round(in.ProductionCost+in.ShippingCost, 2)
	profit := round(netRevenue-totalCosts, 2)

	var margin float64
	if in.SalePrice > 0 {
		margin = round(profit/in.SalePrice*100, 1)
	}

	res := Result{
		Fees: Breakdown{
			TransactionFee:    transaction,
			ListingFee:        ListingFee,
			PaymentProcessing: payment,
			OffsiteAds:        offsite,
			TotalFees:         totalFees,
		},
		NetRevenue:   netRevenue,
		TotalCosts:   totalCosts,
		Profit:       profit,
		ProfitMargin: margin,
	}
	if !res.finite() {
		return Result{}, fmt.Errorf("calculate fees: %w", ErrOverflow)
	}

	return res, nil
}

func (r Result) finite() bool {
	for _, v := range []float64{
		r.Fees.TransactionFee,
		r.Fees.PaymentProcessing,
		r.Fees.OffsiteAds,
		r.Fees.TotalFees,
		r.NetRevenue,
		r.TotalCosts,
		r.Profit,
		r.ProfitMargin,
	} {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

func (in Input) validate() error {
	switch {
	case !isFinite(in.SalePrice) || in.SalePrice <= 0:
		return fmt.Errorf("sale_price must be greater than 0: %w", core.ErrInvalidInput)
	case !isFinite(in.ProductionCost) || in.ProductionCost < 0:
		return fmt.Errorf("production_cost must not be negative: %w", core.ErrInvalidInput)
	case !isFinite(in.ShippingCost) || in.ShippingCost < 0:
		return fmt.Errorf("shipping_cost must not be negative: %w", core.ErrInvalidInput)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round returns the decimal with the given places nearest to the exact
// binary value of v, ties to even.
func round(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'f', places, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return v
	}
	if r == 0 {
		return 0
	}
	return r
}
