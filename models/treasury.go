package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zsmartex/presale/config"
	"github.com/zsmartex/presale/types"
	"gorm.io/gorm"
)

// Treasury is the pooled proceeds ledger, one row per payment currency shared
// across every presale. Rows only change through PlusFunds on purchase and
// SubFunds on operator withdrawal.
type Treasury struct {
	ID        uint64                 `json:"id" gorm:"primaryKey"`
	Currency  types.PurchaseCurrency `json:"currency"`
	Balance   decimal.Decimal        `json:"balance" validate:"ValidateBalance"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func (Treasury) TableName() string {
	return "treasuries"
}

func (t Treasury) ValidateBalance(Balance decimal.Decimal) bool {
	return Balance.GreaterThanOrEqual(decimal.Zero)
}

func GetTreasury(tx *gorm.DB, currency types.PurchaseCurrency) *Treasury {
	var treasury *Treasury

	tx.FirstOrCreate(&treasury, Treasury{Currency: currency})

	return treasury
}

func (t *Treasury) PlusFunds(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("Cannot add funds (currency: " + string(t.Currency) + ", amount: " + amount.String() + ", balance: " + t.Balance.String() + ").")
	}

	t.Balance = t.Balance.Add(amount)
	return tx.Save(&t).Error
}

func (t *Treasury) SubFunds(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(t.Balance) {
		return errors.New("Cannot subtract funds (currency: " + string(t.Currency) + ", amount: " + amount.String() + ", balance: " + t.Balance.String() + ").")
	}

	t.Balance = t.Balance.Sub(amount)
	return tx.Save(&t).Error
}

func TreasuryBalance(currency types.PurchaseCurrency) decimal.Decimal {
	return GetTreasury(config.DataBase, currency).Balance
}
