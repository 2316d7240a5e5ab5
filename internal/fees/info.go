// AngelaMos | 2026
// info.go

package fees

type RateInfo struct {
	Rate        string `json:"rate"`
	Description string `json:"description"`
	Note        string `json:"note,omitempty"`
}

type ScheduleInfo struct {
	TransactionFee    RateInfo `json:"transaction_fee"`
	ListingFee        RateInfo `json:"listing_fee"`
	PaymentProcessing RateInfo `json:"payment_processing"`
	OffsiteAds        RateInfo `json:"offsite_ads"`
}

type InfoResponse struct {
	Fees        ScheduleInfo `json:"fees"`
	LastUpdated string       `json:"last_updated"`
	Source      string       `json:"source"`
}

const (
	ScheduleLastUpdated = "2024-12-19"
	ScheduleSource      = "https://www.etsy.com/legal/fees"
)

// Info describes the fee schedule Calculate applies.
func Info() InfoResponse {
	return InfoResponse{
		Fees: ScheduleInfo{
			TransactionFee: RateInfo{
				Rate:        "6.5%",
				Description: "Transaction fee charged on each sale",
			},
			ListingFee: RateInfo{
				Rate:        "$0.20",
				Description: "Listing fee per product (valid for 4 months)",
			},
			PaymentProcessing: RateInfo{
				Rate:        "3% + $0.25",
				Description: "Payment processing fee",
			},
			OffsiteAds: RateInfo{
				Rate:        "15%",
				Description: "Commission on sales from marketplace offsite ads (optional)",
				Note:        "Mandatory above $10k in annual sales",
			},
		},
		LastUpdated: ScheduleLastUpdated,
		Source:      ScheduleSource,
	}
}
