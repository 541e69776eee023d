package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Account is the ledger row for one user: current gold holdings and
// currency balance. Both are kept at two decimal places and never go
// negative.
type Account struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	AvailableGold    decimal.Decimal `db:"available_gold"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	LastGoldSell     decimal.Decimal `db:"last_gold_sell"`
	TotalGoldSell    decimal.Decimal `db:"total_gold_sell"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

const (
	TransactionDeposit = "deposit"
	TransactionBuy     = "buy"
	TransactionSell    = "sell"
)

// Transaction rows are written once, inside the same database
// transaction as the account mutation, and never updated after that.
type Transaction struct {
	ID               int             `db:"id"`
	UserID           int             `db:"user_id"`
	Type             string          `db:"type"`
	Grams            decimal.Decimal `db:"grams"`
	AmountInCurrency decimal.Decimal `db:"amount_in_currency"`
	CommissionRate   decimal.Decimal `db:"commission_rate"`
	CreatedAt        time.Time       `db:"created_at"`
}

const (
	PriceSourceCache = "cache"
	PriceSourceFeed  = "feed"
)

// PriceQuote is one market price observation with the derived per-gram
// and local-currency figures already rounded.
type PriceQuote struct {
	PerOunceUSD   decimal.Decimal
	PerGramUSD    decimal.Decimal
	PerOunceLocal decimal.Decimal
	PerGramLocal  decimal.Decimal
	Source        string
}

// Round2 applies the money rounding rule used across the ledger:
// half-up to two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
