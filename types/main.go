package types

import "github.com/shopspring/decimal"

type PayloadAction = string

var (
	ActionBuy    PayloadAction = "buy"
	ActionClaim  PayloadAction = "claim"
	ActionReload PayloadAction = "reload"
	ActionSweep  PayloadAction = "sweep"
)

type PurchaseCurrency = string

var (
	CurrencyEth  PurchaseCurrency = "eth"
	CurrencyUsdt PurchaseCurrency = "usdt"
)

// PresalePayloadMessage is the unit of work the API publishes for the presale
// engine worker.
type PresalePayloadMessage struct {
	Action    PayloadAction `json:"action"`
	PresaleID uint64        `json:"presale_id"`
	OrderID   uint64        `json:"order_id,omitempty"`
	UserUID   string        `json:"user_uid,omitempty"`
}

// GlobalPrice mirrors the oracle fetch result cached in redis.
type GlobalPrice struct {
	Value     decimal.Decimal `json:"value"`
	Decimals  int32           `json:"decimals"`
	Timestamp int64           `json:"timestamp"`
}
