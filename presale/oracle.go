package presale

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a single observation of the base asset price against the accounting
// unit, in the feed's own fixed-point representation.
type Rate struct {
	Value     decimal.Decimal `json:"value"`
	Decimals  int32           `json:"decimals"`
	Timestamp time.Time       `json:"timestamp"`
}

// PriceFeed supplies the latest base asset rate. The engine reads it fresh on
// every quote and never caches the result itself.
type PriceFeed interface {
	LatestRate() (Rate, error)
}

// RateTTL is the maximum age of a feed observation before the engine treats
// the oracle as unavailable.
const RateTTL = time.Hour

func (r Rate) Usable(now time.Time) bool {
	if !r.Value.IsPositive() {
		return false
	}

	return now.Sub(r.Timestamp) <= RateTTL
}
