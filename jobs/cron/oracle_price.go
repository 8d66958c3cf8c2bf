package cron

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/gateway"
	"github.com/zsmartex/presale/presale"
	"github.com/zsmartex/presale/types"
)

// OraclePriceJob polls the price oracle and caches the base asset rate the
// purchase engine and the public quote endpoints read. The cached entry
// expires with the staleness window, so a dead oracle stops base asset buys
// instead of serving an old rate.
type OraclePriceJob struct {
}

func (j *OraclePriceJob) Process() {
	var global_price types.GlobalPrice

	resp, err := http.Get(os.Getenv("ORACLE_RATE_URL"))
	if err != nil {
		config.Logger.Errorf("Failed to fetch oracle rate: %v", err)
		time.Sleep(1 * time.Minute)
		return
	}

	body, err := ioutil.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		config.Logger.Errorf("Failed to read oracle rate: %v", err)
		time.Sleep(1 * time.Minute)
		return
	}

	if err := json.Unmarshal(body, &global_price); err != nil {
		config.Logger.Errorf("Failed to parse oracle rate: %v", err)
		time.Sleep(1 * time.Minute)
		return
	}

	global_price.Timestamp = time.Now().Unix()

	config.Redis.SetKey(gateway.OracleRateKey, global_price, presale.RateTTL)

	time.Sleep(1 * time.Minute)
}
