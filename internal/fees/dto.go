// AngelaMos | 2026
// dto.go

package fees

type CalculateRequest struct {
	SalePrice      float64 `json:"sale_price"      validate:"gt=0"`
	ProductionCost float64 `json:"production_cost" validate:"gte=0"`
	ShippingCost   float64 `json:"shipping_cost"   validate:"gte=0"`
	OffsiteAds     bool    `json:"offsite_ads"`
}

func (r CalculateRequest) toInput() Input {
	return Input{
		SalePrice:      r.SalePrice,
		ProductionCost: r.ProductionCost,
		ShippingCost:   r.ShippingCost,
		OffsiteAds:     r.OffsiteAds,
	}
}
