package models

import (
	"database/sql"
	"time"
)

type Member struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	UID       string         `json:"uid"`
	Email     string         `json:"email"`
	Level     int32          `json:"level" gorm:"default:0" validate:"min:0"`
	Role      string         `json:"role"`
	State     string         `json:"state"`
	Username  sql.NullString `json:"username"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (m *Member) IsAdmin() bool {
	return m.Role == "admin" || m.Role == "superadmin"
}
