package models

import "encoding/json"

type WaiterStatus string

const (
	WaiterFree    WaiterStatus = "free"
	WaiterEngaged WaiterStatus = "engaged"
)

// ParseWaiterStatus never fails: anything other than "engaged" is free.
func ParseWaiterStatus(s string) WaiterStatus {
	if WaiterStatus(s) == WaiterEngaged {
		return WaiterEngaged
	}
	return WaiterFree
}

func (s *WaiterStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = WaiterFree
		return nil
	}
	*s = ParseWaiterStatus(raw)
	return nil
}

type Waiter struct {
	ID     uint         `json:"id" gorm:"primaryKey"`
	Name   string       `json:"name" gorm:"not null"`
	Phone  *string      `json:"phone" gorm:"index"`
	Status WaiterStatus `json:"status" gorm:"type:varchar(16);not null;default:'free'"`
}
