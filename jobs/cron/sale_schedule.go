package cron

import (
	"encoding/json"

	"github.com/jasonlvhit/gocron"

	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/types"
)

// SaleScheduleJob ticks the engine's schedule index so sales whose window
// closed get their ended event.
type SaleScheduleJob struct {
}

func (j *SaleScheduleJob) Process() {
	s := gocron.NewScheduler()
	s.Every(1).Minute().Do(sweepEndedSales)
	<-s.Start()
}

func sweepEndedSales() {
	payload_attrs, _ := json.Marshal(types.PresalePayloadMessage{
		Action: types.ActionSweep,
	})

	config.Nats.Publish("presale_processor", payload_attrs)
}
