package models

type Item struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	PriceCents int64  `json:"price_cents" gorm:"not null"`
}
