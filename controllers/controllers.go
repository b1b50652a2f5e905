package controllers

import "github.com/Kariqs/foodcourt-api/services"

type Controllers struct {
	Items     *ItemController
	Customers *CustomerController
	Waiters   *WaiterController
	Orders    *OrderController
	DayEnd    *DayEndController
}

func New(catalog *services.CatalogService, orders *services.OrderService, waiters *services.WaiterService, dayEnd *services.DayEndService) *Controllers {
	return &Controllers{
		Items:     &ItemController{catalog: catalog},
		Customers: &CustomerController{catalog: catalog},
		Waiters:   &WaiterController{waiters: waiters},
		Orders:    &OrderController{orders: orders},
		DayEnd:    &DayEndController{dayEnd: dayEnd},
	}
}
