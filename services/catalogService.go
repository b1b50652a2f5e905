package services

import (
	"context"
	"fmt"

	"github.com/Kariqs/foodcourt-api/models"
	"github.com/Kariqs/foodcourt-api/repository"
)

const customerListLimit = 100

type CreateItemInput struct {
	Name       string `json:"name"`
	PriceCents *int64 `json:"price_cents"`
}

type UpdateItemInput struct {
	Name       *string `json:"name"`
	PriceCents *int64  `json:"price_cents"`
}

type CreateCustomerInput struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

// CatalogService owns items and the customer book.
type CatalogService struct {
	store repository.Store
}

func NewCatalogService(store repository.Store) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.store.ListItems(ctx)
}

func (s *CatalogService) CreateItem(ctx context.Context, in CreateItemInput) (*models.Item, error) {
	if in.Name == "" || in.PriceCents == nil || *in.PriceCents < 0 {
		return nil, invalid("price_cents", "name and positive price_cents required")
	}
	item := &models.Item{Name: in.Name, PriceCents: *in.PriceCents}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem changes the catalog entry only. Lines already ordered keep the
// price they were placed at.
func (s *CatalogService) UpdateItem(ctx context.Context, id uint, in UpdateItemInput) (*models.Item, error) {
	if in.Name != nil && *in.Name == "" {
		return nil, invalid("name", "name must not be empty")
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return nil, invalid("price_cents", "price_cents must not be negative")
	}

	item, err := s.store.FindItem(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("item %d: %w", id, err)
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.PriceCents != nil {
		item.PriceCents = *in.PriceCents
	}
	if err := s.store.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx, customerListLimit)
}

func (s *CatalogService) CreateCustomer(ctx context.Context, in CreateCustomerInput) (*models.Customer, error) {
	if in.Name == "" {
		return nil, invalid("name", "name required")
	}
	name := in.Name
	customer := &models.Customer{Name: &name, Phone: nonEmpty(in.Phone)}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
