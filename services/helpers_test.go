package services

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/Kariqs/foodcourt-api/initializers"
	"github.com/Kariqs/foodcourt-api/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// Seeded catalog and roster, see initializers.SeedDefaults.
const (
	vegSandwich uint = 1 // 12000
	masalaDosa  uint = 2 // 15000
	coldCoffee  uint = 4 // 9000
	freshLime   uint = 5 // 7000

	asha uint = 1
	ravi uint = 2
)

var fixedNow = time.Date(2026, 10, 18, 20, 15, 0, 0, time.UTC)

func newSeededStore(t *testing.T) *repository.GormStore {
	t.Helper()
	db, err := initializers.OpenDB("sqlite", "file::memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, initializers.Migrate(db))
	require.NoError(t, initializers.SeedDefaults(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repository.NewGormStore(db)
}

func newOrderService(store repository.Store) *OrderService {
	svc := NewOrderService(store)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func intPtr(v int) *int       { return &v }
func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func int64Ptr(v int64) *int64 { return &v }

func line(itemID uint, qty int) LineInput {
	return LineInput{
		ItemID:   json.RawMessage(strconv.FormatUint(uint64(itemID), 10)),
		Quantity: json.RawMessage(strconv.Itoa(qty)),
	}
}

func mustCreateOrder(t *testing.T, svc *OrderService, in CreateOrderInput) *CreateOrderResult {
	t.Helper()
	res, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	return res
}

func requireValidation(t *testing.T, err error, message string) {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, message, verr.Message)
}
