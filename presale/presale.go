package presale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Presale is one configured sale round for a token allocation. The record is
// owned by the Engine; callers only ever see copies.
type Presale struct {
	ID              uint64
	SaleToken       string
	StartAt         time.Time
	EndsAt          time.Time
	Price           decimal.Decimal
	AvailableTokens decimal.Decimal
	SoldTokens      decimal.Decimal
	WithdrawnTokens decimal.Decimal
	LimitPerUser    decimal.Decimal
	Precision       decimal.Decimal
	VestingEndTime  time.Time
	SaleStarted     bool
	SaleActive      bool
}

// UserPosition tracks one buyer inside one presale.
type UserPosition struct {
	PurchasedTotal decimal.Decimal
	Claimable      decimal.Decimal
}

func (p *Presale) IsStarted() bool {
	return p.SaleStarted
}

func (p *Presale) IsEnded(now time.Time) bool {
	return now.After(p.EndsAt)
}

func (p *Presale) IsCompleted() bool {
	return p.SoldTokens.Equal(p.AvailableTokens)
}

// InSaleWindow reports whether purchases are admitted at now: the sale has been
// started, is not paused and now falls inside [StartAt, EndsAt].
func (p *Presale) InSaleWindow(now time.Time) bool {
	if !p.SaleStarted || !p.SaleActive {
		return false
	}

	return !now.Before(p.StartAt) && !now.After(p.EndsAt)
}

func (p *Presale) VestingEnded(now time.Time) bool {
	return now.After(p.VestingEndTime)
}

// TokenBalance is the custodial inventory still held for this presale:
// allocated supply minus sold and minus what the operator already pulled out.
func (p *Presale) TokenBalance() decimal.Decimal {
	return p.AvailableTokens.Sub(p.SoldTokens).Sub(p.WithdrawnTokens)
}

// UsdtQuote prices tokenAmount in the accounting asset's smallest units:
// amount * price / precision with the quotient truncated toward zero, so
// remainder dust always stays with the treasury.
func (p *Presale) UsdtQuote(tokenAmount decimal.Decimal) decimal.Decimal {
	quote, _ := tokenAmount.Mul(p.Price).QuoRem(p.Precision, 0)

	return quote
}

// EthQuote converts a usdt quote into the base asset at rate, truncating the
// same way.
func (p *Presale) EthQuote(usdtAmount decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	quote, _ := usdtAmount.Mul(p.Precision).QuoRem(rate, 0)

	return quote
}
