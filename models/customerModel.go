package models

// Customer is created the first time an unknown phone shows up on an order.
// Phone is a lookup key only; it is not unique at the schema level.
type Customer struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  *string `json:"name"`
	Phone *string `json:"phone" gorm:"index"`
}
