package queries

import "github.com/shopspring/decimal"

type PresalePayload struct {
	ID              uint64          `json:"id" form:"id"`
	SaleToken       string          `json:"sale_token" form:"sale_token"`
	Price           decimal.Decimal `json:"price" form:"price"`
	AvailableTokens decimal.Decimal `json:"available_tokens" form:"available_tokens"`
	LimitPerUser    decimal.Decimal `json:"limit_per_user" form:"limit_per_user"`
	Precision       decimal.Decimal `json:"precision" form:"precision"`
	StartTime       int64           `json:"start_time" form:"start_time"`
	EndTime         int64           `json:"end_time" form:"end_time"`
	VestingEndTime  int64           `json:"vesting_end_time" form:"vesting_end_time"`
	BannerUrl       string          `json:"banner_url" form:"banner_url"`
	Data            string          `json:"data" form:"data"`
}

type PricePayload struct {
	Price decimal.Decimal `json:"price" form:"price"`
}

type TimePayload struct {
	Time int64 `json:"time" form:"time"`
}

type WithdrawPayload struct {
	To     string          `json:"to" form:"to"`
	Amount decimal.Decimal `json:"amount" form:"amount"`
}
