package repository

import (
	"context"
	"errors"

	"github.com/Kariqs/foodcourt-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	err := s.conn(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

func (s *GormStore) FindItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := s.conn(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (s *GormStore) CreateItem(ctx context.Context, item *models.Item) error {
	return s.conn(ctx).Create(item).Error
}

func (s *GormStore) SaveItem(ctx context.Context, item *models.Item) error {
	return s.conn(ctx).Save(item).Error
}

func (s *GormStore) ListCustomers(ctx context.Context, limit int) ([]models.Customer, error) {
	customers := []models.Customer{}
	err := s.conn(ctx).Order("id DESC").Limit(limit).Find(&customers).Error
	return customers, err
}

// FindCustomerByPhone returns the oldest customer with that phone.
func (s *GormStore) FindCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.conn(ctx).Where("phone = ?", phone).Order("id ASC").First(&customer).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return s.conn(ctx).Create(customer).Error
}

func (s *GormStore) ListWaiters(ctx context.Context) ([]models.Waiter, error) {
	waiters := []models.Waiter{}
	err := s.conn(ctx).Order("name ASC").Order("id ASC").Find(&waiters).Error
	return waiters, err
}

func (s *GormStore) FindWaiter(ctx context.Context, id uint) (*models.Waiter, error) {
	var waiter models.Waiter
	if err := s.conn(ctx).First(&waiter, id).Error; err != nil {
		return nil, translate(err)
	}
	return &waiter, nil
}

func (s *GormStore) FindWaiterByPhone(ctx context.Context, phone string) (*models.Waiter, error) {
	var waiter models.Waiter
	if err := s.conn(ctx).Where("phone = ?", phone).Order("id ASC").First(&waiter).Error; err != nil {
		return nil, translate(err)
	}
	return &waiter, nil
}

func (s *GormStore) CreateWaiter(ctx context.Context, waiter *models.Waiter) error {
	return s.conn(ctx).Create(waiter).Error
}

func (s *GormStore) SetWaiterStatus(ctx context.Context, id uint, status models.WaiterStatus) error {
	return s.conn(ctx).Model(&models.Waiter{}).Where("id = ?", id).Update("status", status).Error
}

// CreateOrder inserts the order row, then its lines. Callers wanting
// all-or-nothing must run it inside Transaction.
func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderItem) error {
	db := s.conn(ctx)
	if err := db.Omit(clause.Associations).Create(order).Error; err != nil {
		return err
	}
	for i := range lines {
		lines[i].OrderID = order.ID
	}
	if len(lines) > 0 {
		if err := db.Omit(clause.Associations).Create(&lines).Error; err != nil {
			return err
		}
	}
	order.Items = lines
	return nil
}

func (s *GormStore) withOrderDetails(ctx context.Context) *gorm.DB {
	return s.conn(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Item").
		Preload("Customer").
		Preload("Waiter")
}

func (s *GormStore) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.withOrderDetails(ctx).First(&order, id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *GormStore) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := s.withOrderDetails(ctx)
	if filter.WaiterID != nil {
		query = query.Where("waiter_id = ?", *filter.WaiterID)
	}
	if filter.Ascending {
		query = query.Order("id ASC")
	} else {
		query = query.Order("id DESC")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	orders := []models.Order{}
	err := query.Find(&orders).Error
	return orders, err
}

// purgeBatch keeps each IN list under SQLite's bound-parameter limit.
const purgeBatch = 500

func (s *GormStore) PurgeOrders(ctx context.Context, ids []uint) (int64, error) {
	db := s.conn(ctx)
	var purged int64
	for start := 0; start < len(ids); start += purgeBatch {
		batch := ids[start:min(start+purgeBatch, len(ids))]
		if err := db.Where("order_id IN ?", batch).Delete(&models.OrderItem{}).Error; err != nil {
			return purged, err
		}
		result := db.Where("id IN ?", batch).Delete(&models.Order{})
		if result.Error != nil {
			return purged, result.Error
		}
		purged += result.RowsAffected
	}
	return purged, nil
}

func (s *GormStore) CreateDayEndReport(ctx context.Context, report *models.DayEndReport) error {
	return s.conn(ctx).Create(report).Error
}

func (s *GormStore) ListDayEndReports(ctx context.Context, limit int) ([]models.DayEndReport, error) {
	reports := []models.DayEndReport{}
	err := s.conn(ctx).Order("id DESC").Limit(limit).Find(&reports).Error
	return reports, err
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
