package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zsmartex/presale/config"
)

// VestingBalance mirrors one engine user position: tokens bought in a presale
// and the part of them still unclaimed.
type VestingBalance struct {
	ID             uint64          `json:"id" gorm:"primaryKey"`
	PresaleID      uint64          `json:"presale_id"`
	MemberUID      string          `json:"member_uid"`
	PurchasedTotal decimal.Decimal `json:"purchased_total"`
	Claimable      decimal.Decimal `json:"claimable"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (VestingBalance) TableName() string {
	return "vesting_balances"
}

func GetVestingBalance(presale_id uint64, member_uid string) *VestingBalance {
	var balance *VestingBalance

	config.DataBase.FirstOrCreate(&balance, VestingBalance{PresaleID: presale_id, MemberUID: member_uid})

	return balance
}

func GetVestingBalances(presale_id uint64) []*VestingBalance {
	var balances []*VestingBalance

	config.DataBase.Find(&balances, "presale_id = ?", presale_id)

	return balances
}
