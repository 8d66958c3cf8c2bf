package presale

import (
	"github.com/shopspring/decimal"
)

type EventType = string

var (
	EventPresaleCreated  EventType = "created"
	EventSaleStarted     EventType = "started"
	EventSalePaused      EventType = "paused"
	EventSaleUnpaused    EventType = "unpaused"
	EventSaleEnded       EventType = "ended"
	EventTokensBought    EventType = "bought"
	EventTokensClaimed   EventType = "claimed"
	EventFundsWithdrawn  EventType = "withdrawn"
	EventTokensWithdrawn EventType = "token_withdrawn"
)

// EventPublisher forwards engine events to auditors and indexers. Emission is a
// side effect only and never gates the outcome of the operation that produced
// the event.
type EventPublisher interface {
	PublishPresaleEvent(event EventType, payload interface{})
}

type PresaleCreatedEvent struct {
	PresaleID       uint64          `json:"presale_id"`
	SaleToken       string          `json:"sale_token"`
	AvailableTokens decimal.Decimal `json:"available_tokens"`
	StartAt         int64           `json:"start_at"`
	EndsAt          int64           `json:"ends_at"`
}

type SaleStateEvent struct {
	PresaleID uint64 `json:"presale_id"`
	Operator  string `json:"operator"`
	Timestamp int64  `json:"timestamp"`
}

type BoughtEvent struct {
	Buyer     string          `json:"buyer"`
	SaleToken string          `json:"sale_token"`
	Amount    decimal.Decimal `json:"amount"`
	Paid      decimal.Decimal `json:"paid"`
	Currency  string          `json:"currency"`
	Timestamp int64           `json:"timestamp"`
	PresaleID uint64          `json:"presale_id"`
}

type ClaimedEvent struct {
	User      string          `json:"user"`
	SaleToken string          `json:"sale_token"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp int64           `json:"timestamp"`
	PresaleID uint64          `json:"presale_id"`
}

type WithdrawnEvent struct {
	Operator  string          `json:"operator"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Timestamp int64           `json:"timestamp"`
	PresaleID uint64          `json:"presale_id,omitempty"`
}

func (e *Engine) publish(event EventType, payload interface{}) {
	if e.Publisher == nil {
		return
	}

	e.Publisher.PublishPresaleEvent(event, payload)
}
