package models

import (
	"time"

	"gorm.io/datatypes"
)

// DayEndReport is the only trace of purged orders kept in the database.
type DayEndReport struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Filename     string         `json:"filename" gorm:"not null"`
	OrderCount   int            `json:"order_count" gorm:"not null"`
	TotalCents   int64          `json:"total_cents" gorm:"not null"`
	WaiterTotals datatypes.JSON `json:"waiter_totals"`
	CreatedAt    time.Time      `json:"created_at"`
}
