package repository

import (
	"context"
	"errors"

	"github.com/Kariqs/foodcourt-api/models"
)

var ErrNotFound = errors.New("record not found")

// OrderFilter narrows ListOrders. A zero Limit means no limit.
type OrderFilter struct {
	WaiterID  *uint
	Limit     int
	Ascending bool
}

// Store is every read and write the services need. Implementations must
// return ErrNotFound for missing single records.
type Store interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	FindItem(ctx context.Context, id uint) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	SaveItem(ctx context.Context, item *models.Item) error

	ListCustomers(ctx context.Context, limit int) ([]models.Customer, error)
	FindCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error

	ListWaiters(ctx context.Context) ([]models.Waiter, error)
	FindWaiter(ctx context.Context, id uint) (*models.Waiter, error)
	FindWaiterByPhone(ctx context.Context, phone string) (*models.Waiter, error)
	CreateWaiter(ctx context.Context, waiter *models.Waiter) error
	SetWaiterStatus(ctx context.Context, id uint, status models.WaiterStatus) error

	CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderItem) error
	FindOrder(ctx context.Context, id uint) (*models.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	// PurgeOrders deletes exactly the listed orders, lines first.
	PurgeOrders(ctx context.Context, ids []uint) (int64, error)

	CreateDayEndReport(ctx context.Context, report *models.DayEndReport) error
	ListDayEndReports(ctx context.Context, limit int) ([]models.DayEndReport, error)

	// Transaction runs fn against a transactional Store. fn's error rolls
	// everything back; nil commits.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
