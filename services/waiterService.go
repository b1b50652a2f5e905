package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kariqs/foodcourt-api/models"
	"github.com/Kariqs/foodcourt-api/repository"
)

type CreateWaiterInput struct {
	Name   string              `json:"name"`
	Phone  *string             `json:"phone"`
	Status models.WaiterStatus `json:"status"`
}

type LoginInput struct {
	Phone string `json:"phone"`
}

type StatusInput struct {
	Status models.WaiterStatus `json:"status"`
}

// WaiterService tracks who is on the floor and whether they are free.
type WaiterService struct {
	store repository.Store
}

func NewWaiterService(store repository.Store) *WaiterService {
	return &WaiterService{store: store}
}

func (s *WaiterService) List(ctx context.Context) ([]models.Waiter, error) {
	return s.store.ListWaiters(ctx)
}

func (s *WaiterService) Create(ctx context.Context, in CreateWaiterInput) (*models.Waiter, error) {
	if in.Name == "" {
		return nil, invalid("name", "name required")
	}
	waiter := &models.Waiter{
		Name:   in.Name,
		Phone:  nonEmpty(in.Phone),
		Status: models.ParseWaiterStatus(string(in.Status)),
	}
	if err := s.store.CreateWaiter(ctx, waiter); err != nil {
		return nil, err
	}
	return waiter, nil
}

// Login matches the phone exactly. There is no password.
func (s *WaiterService) Login(ctx context.Context, in LoginInput) (*models.Waiter, error) {
	if in.Phone == "" {
		return nil, invalid("phone", "phone required")
	}
	waiter, err := s.store.FindWaiterByPhone(ctx, in.Phone)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return waiter, nil
}

// SetStatus stores free or engaged; any other value becomes free.
func (s *WaiterService) SetStatus(ctx context.Context, id uint, in StatusInput) (*models.Waiter, error) {
	status := models.ParseWaiterStatus(string(in.Status))

	var updated *models.Waiter
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.FindWaiter(ctx, id); err != nil {
			return err
		}
		if err := tx.SetWaiterStatus(ctx, id, status); err != nil {
			return err
		}
		waiter, err := tx.FindWaiter(ctx, id)
		updated = waiter
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("waiter %d: %w", id, err)
	}
	return updated, nil
}

// Orders returns the waiter's latest orders, newest first.
func (s *WaiterService) Orders(ctx context.Context, id uint, limit int) ([]models.OrderView, error) {
	if _, err := s.store.FindWaiter(ctx, id); err != nil {
		return nil, fmt.Errorf("waiter %d: %w", id, err)
	}
	orders, err := s.store.ListOrders(ctx, repository.OrderFilter{WaiterID: &id, Limit: NormalizeLimit(limit)})
	if err != nil {
		return nil, err
	}
	return views(orders), nil
}
