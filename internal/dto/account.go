package dto

import "time"

type AccountResponseDTO struct {
	AvailableGold    float64   `json:"available_gold" example:"0.1"`
	AvailableBalance float64   `json:"available_balance" example:"388"`
	LastGoldSell     float64   `json:"last_gold_sell" example:"0.05"`
	TotalGoldSell    float64   `json:"total_gold_sell" example:"0.05"`
	UpdatedAt        time.Time `json:"updated_at" example:"2020-12-09T16:09:57+03:00"`
}

type DepositRequestDTO struct {
	Amount float64 `json:"amount" example:"1000" validate:"required,gt=0"`
}

type DepositResponseDTO struct {
	AvailableBalance float64 `json:"available_balance" example:"1000"`
}

type TradeRequestDTO struct {
	Grams float64 `json:"grams" example:"0.1" validate:"required,gt=0"`
}

type BuyResponseDTO struct {
	AvailableBalance float64 `json:"available_balance" example:"388"`
	AvailableGold    float64 `json:"available_gold" example:"0.1"`
}

type SellResponseDTO struct {
	AvailableBalance float64 `json:"available_balance" example:"682"`
	AvailableGold    float64 `json:"available_gold" example:"0.05"`
	TotalGoldSell    float64 `json:"total_selling_gold" example:"0.05"`
}

type TransactionDTO struct {
	Type             string    `json:"transaction_type" example:"buy"`
	Grams            float64   `json:"grams" example:"0.1"`
	AmountInCurrency float64   `json:"amount_in_currency" example:"612"`
	CommissionRate   float64   `json:"commission_rate" example:"0.02"`
	CreatedAt        time.Time `json:"transaction_date" example:"2020-12-09T16:09:57+03:00"`
}

type TransactionListResponseDTO struct {
	Transactions []TransactionDTO `json:"transactions"`
	Page         int              `json:"page" example:"1"`
	PageSize     int              `json:"page_size" example:"10"`
	Total        int              `json:"total" example:"42"`
}
