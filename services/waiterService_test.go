package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Kariqs/foodcourt-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaiterList_OrderedByName(t *testing.T) {
	svc := NewWaiterService(newSeededStore(t))

	waiters, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, waiters, 3)
	assert.Equal(t, "Asha", waiters[0].Name)
	assert.Equal(t, "Meena", waiters[1].Name)
	assert.Equal(t, "Ravi", waiters[2].Name)
	for _, w := range waiters {
		assert.Equal(t, models.WaiterFree, w.Status)
	}
}

func TestWaiterCreate(t *testing.T) {
	svc := NewWaiterService(newSeededStore(t))
	ctx := context.Background()

	waiter, err := svc.Create(ctx, CreateWaiterInput{Name: "Farah", Phone: strPtr("9811111111"), Status: "engaged"})
	require.NoError(t, err)
	assert.NotZero(t, waiter.ID)
	assert.Equal(t, models.WaiterEngaged, waiter.Status)

	waiter, err = svc.Create(ctx, CreateWaiterInput{Name: "Joel", Status: "sleeping"})
	require.NoError(t, err)
	assert.Equal(t, models.WaiterFree, waiter.Status)
	assert.Nil(t, waiter.Phone)

	_, err = svc.Create(ctx, CreateWaiterInput{})
	requireValidation(t, err, "name required")
}

func TestWaiterLogin(t *testing.T) {
	svc := NewWaiterService(newSeededStore(t))
	ctx := context.Background()

	waiter, err := svc.Login(ctx, LoginInput{Phone: "9876512345"})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", waiter.Name)

	waiter, err = svc.Login(ctx, LoginInput{Phone: "0000000000"})
	assert.Nil(t, waiter)
	assert.True(t, errors.Is(err, ErrUnauthenticated))

	_, err = svc.Login(ctx, LoginInput{})
	requireValidation(t, err, "phone required")
}

func TestWaiterSetStatus(t *testing.T) {
	svc := NewWaiterService(newSeededStore(t))
	ctx := context.Background()

	waiter, err := svc.SetStatus(ctx, ravi, StatusInput{Status: "engaged"})
	require.NoError(t, err)
	assert.Equal(t, models.WaiterEngaged, waiter.Status)

	// setting the same value again is not an error
	waiter, err = svc.SetStatus(ctx, ravi, StatusInput{Status: "engaged"})
	require.NoError(t, err)
	assert.Equal(t, models.WaiterEngaged, waiter.Status)

	waiter, err = svc.SetStatus(ctx, ravi, StatusInput{Status: "on-break"})
	require.NoError(t, err)
	assert.Equal(t, models.WaiterFree, waiter.Status)

	_, err = svc.SetStatus(ctx, 999, StatusInput{Status: "engaged"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWaiterOrders(t *testing.T) {
	store := newSeededStore(t)
	orders := newOrderService(store)
	svc := NewWaiterService(store)
	ctx := context.Background()

	var mine []uint
	for table := 1; table <= 3; table++ {
		mine = append(mine, mustCreateOrder(t, orders, CreateOrderInput{
			TableNumber: intPtr(table),
			WaiterID:    uintPtr(asha),
			Customer:    &CustomerInput{Phone: strPtr("9000000002")},
			Items:       []LineInput{line(coldCoffee, table)},
		}).ID)
	}
	mustCreateOrder(t, orders, CreateOrderInput{
		TableNumber: intPtr(8),
		WaiterID:    uintPtr(ravi),
		Items:       []LineInput{line(coldCoffee, 1)},
	})

	views, err := svc.Orders(ctx, asha, 2)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, mine[2], views[0].ID)
	assert.Equal(t, mine[1], views[1].ID)
	require.NotNil(t, views[0].CustomerPhone)
	assert.Equal(t, "9000000002", *views[0].CustomerPhone)
	require.Len(t, views[0].Items, 1)
	assert.Equal(t, 3, views[0].Items[0].Quantity)

	views, err = svc.Orders(ctx, asha, 0)
	require.NoError(t, err)
	assert.Len(t, views, 3)

	_, err = svc.Orders(ctx, 999, 10)
	assert.True(t, errors.Is(err, ErrNotFound))
}
