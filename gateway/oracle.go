package gateway

import (
	"time"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/presale"
	"github.com/zsmartex/presale/types"
)

const OracleRateKey = "presale:oracle:eth_usdt"

// RedisPriceFeed reads the rate the oracle cron job keeps in redis. A missing
// or expired key surfaces as an error and the engine maps it to
// OracleUnavailable.
type RedisPriceFeed struct {
}

func NewRedisPriceFeed() *RedisPriceFeed {
	return &RedisPriceFeed{}
}

func (f *RedisPriceFeed) LatestRate() (presale.Rate, error) {
	var global_price types.GlobalPrice

	if err := config.Redis.GetKey(OracleRateKey, &global_price); err != nil {
		return presale.Rate{}, err
	}

	return presale.Rate{
		Value:     global_price.Value,
		Decimals:  global_price.Decimals,
		Timestamp: time.Unix(global_price.Timestamp, 0),
	}, nil
}
