package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Presale struct {
	ID              uint64          `json:"id"`
	SaleToken       string          `json:"sale_token"`
	Price           decimal.Decimal `json:"price"`
	AvailableTokens decimal.Decimal `json:"available_tokens"`
	SoldTokens      decimal.Decimal `json:"sold_tokens"`
	TokenBalance    decimal.Decimal `json:"token_balance"`
	LimitPerUser    decimal.Decimal `json:"limit_per_user"`
	Precision       decimal.Decimal `json:"precision"`
	StartTime       int64           `json:"start_time"`
	EndTime         int64           `json:"end_time"`
	VestingEndTime  int64           `json:"vesting_end_time"`
	SaleStarted     bool            `json:"sale_started"`
	SaleActive      bool            `json:"sale_active"`
	Ended           bool            `json:"ended"`
	Completed       bool            `json:"completed"`
	BannerUrl       string          `json:"banner_url"`
	Data            string          `json:"data"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type VestingBalance struct {
	PresaleID      uint64          `json:"presale_id"`
	PurchasedTotal decimal.Decimal `json:"purchased_total"`
	Claimable      decimal.Decimal `json:"claimable"`
	VestingEndTime int64           `json:"vesting_end_time"`
	Claimed        decimal.Decimal `json:"claimed"`
}

type Quote struct {
	PresaleID uint64          `json:"presale_id"`
	Currency  string          `json:"currency"`
	Quantity  decimal.Decimal `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
}
