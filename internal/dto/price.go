package dto

type PriceResponseDTO struct {
	PerOunceUSD   float64 `json:"price_per_ounce_usd" example:"2034.56"`
	PerGramUSD    float64 `json:"price_per_1gram_usd" example:"71.79"`
	PerOunceLocal float64 `json:"price_per_ounce_inr" example:"168868.48"`
	PerGramLocal  float64 `json:"price_per_1gram_inr" example:"5958.62"`
	Source        string  `json:"source" example:"cache"`
}
