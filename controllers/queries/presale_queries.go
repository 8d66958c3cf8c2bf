package queries

import "github.com/shopspring/decimal"

type QuoteQuery struct {
	Quantity decimal.Decimal `json:"quantity" form:"quantity" validate:"required"`
}

type OrderQuery struct {
	PresaleID uint64 `json:"presale_id" form:"presale_id"`
	Limit     int    `json:"limit" form:"limit" validate:"max:1000"`
	Page      int    `json:"page" form:"page" validate:"min:1"`
}
