package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/types"
)

// PresaleOrder is one purchase request flowing through the engine pipeline:
// created pending by the API, settled done or reject by the engine worker.
type PresaleOrder struct {
	ID         uint64                 `json:"id" gorm:"primaryKey"`
	UUID       uuid.UUID              `json:"uuid"`
	PresaleID  uint64                 `json:"presale_id"`
	MemberUID  string                 `json:"member_uid"`
	Currency   types.PurchaseCurrency `json:"currency"`
	Quantity   decimal.Decimal        `json:"quantity"`
	AmountPaid decimal.Decimal        `json:"amount_paid"`
	State      OrderState             `json:"state"`
	Reason     string                 `json:"reason"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func (PresaleOrder) TableName() string {
	return "presale_orders"
}

func (o *PresaleOrder) WriteToInflux() {
	quantity, _ := o.Quantity.Float64()
	amount_paid, _ := o.AmountPaid.Float64()

	tags := map[string]string{"presale": strconv.FormatUint(o.PresaleID, 10)}
	fields := map[string]interface{}{
		"id":          int32(o.ID),
		"member_uid":  o.MemberUID,
		"currency":    o.Currency,
		"quantity":    quantity,
		"amount_paid": amount_paid,
		"state":       int32(o.State),
		"created_at":  o.CreatedAt,
	}

	config.InfluxDB.NewPoint("presale_orders", tags, fields)
}

type PresaleOrderJSON struct {
	ID         uint64                 `json:"id"`
	UUID       uuid.UUID              `json:"uuid"`
	PresaleID  uint64                 `json:"presale_id"`
	Currency   types.PurchaseCurrency `json:"currency"`
	Quantity   decimal.Decimal        `json:"quantity"`
	AmountPaid decimal.Decimal        `json:"amount_paid"`
	State      OrderState             `json:"state"`
	Reason     string                 `json:"reason"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func (o *PresaleOrder) ToJSON() *PresaleOrderJSON {
	return &PresaleOrderJSON{
		ID:         o.ID,
		UUID:       o.UUID,
		PresaleID:  o.PresaleID,
		Currency:   o.Currency,
		Quantity:   o.Quantity,
		AmountPaid: o.AmountPaid,
		State:      o.State,
		Reason:     o.Reason,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
