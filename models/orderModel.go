package models

import "time"

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TableNumber int         `json:"table_number" gorm:"not null"`
	CustomerID  *uint       `json:"customer_id" gorm:"index"`
	Customer    *Customer   `json:"-" gorm:"foreignKey:CustomerID"`
	WaiterID    *uint       `json:"waiter_id" gorm:"index"`
	Waiter      *Waiter     `json:"-" gorm:"foreignKey:WaiterID"`
	TotalCents  int64       `json:"total_cents" gorm:"not null"`
	CreatedAt   time.Time   `json:"created_at"`
	Items       []OrderItem `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem keeps the catalog price that was current when the order was placed.
type OrderItem struct {
	ID                uint  `gorm:"primaryKey"`
	OrderID           uint  `gorm:"not null;index"`
	ItemID            uint  `gorm:"not null"`
	Item              Item  `gorm:"foreignKey:ItemID"`
	Quantity          int   `gorm:"not null"`
	PriceCentsAtOrder int64 `gorm:"not null"`
}

func (oi OrderItem) LineTotalCents() int64 {
	return int64(oi.Quantity) * oi.PriceCentsAtOrder
}

type OrderLineView struct {
	ItemID            uint   `json:"item_id"`
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	PriceCentsAtOrder int64  `json:"price_cents_at_order"`
}

type OrderView struct {
	ID            uint            `json:"id"`
	TableNumber   int             `json:"table_number"`
	TotalCents    int64           `json:"total_cents"`
	CreatedAt     time.Time       `json:"created_at"`
	CustomerName  *string         `json:"customer_name"`
	CustomerPhone *string         `json:"customer_phone"`
	WaiterName    *string         `json:"waiter_name"`
	WaiterPhone   *string         `json:"waiter_phone"`
	WaiterStatus  *WaiterStatus   `json:"waiter_status"`
	Items         []OrderLineView `json:"items"`
}

// View flattens an order loaded with its customer, waiter and lines.
func (o Order) View() OrderView {
	view := OrderView{
		ID:          o.ID,
		TableNumber: o.TableNumber,
		TotalCents:  o.TotalCents,
		CreatedAt:   o.CreatedAt,
		Items:       make([]OrderLineView, 0, len(o.Items)),
	}
	if o.Customer != nil {
		view.CustomerName = o.Customer.Name
		view.CustomerPhone = o.Customer.Phone
	}
	if o.Waiter != nil {
		name, status := o.Waiter.Name, o.Waiter.Status
		view.WaiterName = &name
		view.WaiterPhone = o.Waiter.Phone
		view.WaiterStatus = &status
	}
	for _, line := range o.Items {
		view.Items = append(view.Items, OrderLineView{
			ItemID:            line.ItemID,
			Name:              line.Item.Name,
			Quantity:          line.Quantity,
			PriceCentsAtOrder: line.PriceCentsAtOrder,
		})
	}
	return view
}
