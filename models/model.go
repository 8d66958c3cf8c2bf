package models

import (
	"github.com/zsmartex/presale/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func Lock() (tx *gorm.DB) {
	return config.DataBase.Clauses(clause.Locking{Strength: "UPDATE"})
}

type Reference struct {
	ID   uint64
	Type string
}

type OrderState int32

var (
	StatePending OrderState = 0
	StateDone    OrderState = 200
	StateReject  OrderState = -200
)
