package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/volatiletech/null"
	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/presale"
)

// Presale is the durable mirror of one engine campaign record. The engine
// worker hydrates the in-memory registry from these rows on start and writes
// back after every accepted operation.
type Presale struct {
	ID              uint64          `json:"id" gorm:"primaryKey"`
	SaleToken       string          `json:"sale_token"`
	StartAt         time.Time       `json:"start_at"`
	EndsAt          time.Time       `json:"ends_at"`
	Price           decimal.Decimal `json:"price"`
	AvailableTokens decimal.Decimal `json:"available_tokens"`
	SoldTokens      decimal.Decimal `json:"sold_tokens"`
	WithdrawnTokens decimal.Decimal `json:"withdrawn_tokens"`
	LimitPerUser    decimal.Decimal `json:"limit_per_user"`
	Precision       decimal.Decimal `json:"precision"`
	VestingEndTime  time.Time       `json:"vesting_end_time"`
	SaleStarted     bool            `json:"sale_started"`
	SaleActive      bool            `json:"sale_active"`
	BannerUrl       null.String     `json:"banner_url"`
	Data            null.String     `json:"data"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (Presale) TableName() string {
	return "presales"
}

func (m *Presale) IsStarted() bool {
	return m.SaleStarted
}

func (m *Presale) IsEnded() bool {
	return time.Now().After(m.EndsAt)
}

func (m *Presale) IsCompleted() bool {
	return m.SoldTokens.Equal(m.AvailableTokens)
}

func (m *Presale) TokenBalance() decimal.Decimal {
	return m.AvailableTokens.Sub(m.SoldTokens).Sub(m.WithdrawnTokens)
}

// ToEngine converts the row into the engine's record shape.
func (m *Presale) ToEngine() *presale.Presale {
	return &presale.Presale{
		ID:              m.ID,
		SaleToken:       m.SaleToken,
		StartAt:         m.StartAt,
		EndsAt:          m.EndsAt,
		Price:           m.Price,
		AvailableTokens: m.AvailableTokens,
		SoldTokens:      m.SoldTokens,
		WithdrawnTokens: m.WithdrawnTokens,
		LimitPerUser:    m.LimitPerUser,
		Precision:       m.Precision,
		VestingEndTime:  m.VestingEndTime,
		SaleStarted:     m.SaleStarted,
		SaleActive:      m.SaleActive,
	}
}

// ApplyEngine copies the sold counter back onto the row after a settlement.
// Every other field is written by the admin API straight to the row, copying
// it from a possibly stale engine snapshot would revert a pending update.
func (m *Presale) ApplyEngine(p presale.Presale) {
	m.SoldTokens = p.SoldTokens
}

func GetPresale(id uint64) (*Presale, error) {
	var m *Presale

	if result := config.DataBase.First(&m, id); result.Error != nil {
		return nil, result.Error
	}

	return m, nil
}
