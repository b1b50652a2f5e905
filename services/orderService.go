package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/Kariqs/foodcourt-api/metrics"
	"github.com/Kariqs/foodcourt-api/models"
	"github.com/Kariqs/foodcourt-api/repository"
)

type CustomerInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// MaxLineQuantity bounds a single line so totals stay far from int64 limits.
const MaxLineQuantity = 1_000_000

// LineInput keeps item_id and quantity undecoded so a malformed line is
// reported by its position instead of failing the whole request body.
type LineInput struct {
	ItemID   json.RawMessage `json:"item_id"`
	Quantity json.RawMessage `json:"quantity"`

	malformed bool
}

func (l *LineInput) UnmarshalJSON(data []byte) error {
	type fields LineInput
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		*l = LineInput{malformed: true}
		return nil
	}
	*l = LineInput(f)
	return nil
}

type lineRequest struct {
	itemID   uint
	quantity int
}

type CreateOrderInput struct {
	TableNumber *int           `json:"table_number"`
	Customer    *CustomerInput `json:"customer"`
	WaiterID    *uint          `json:"waiter_id"`
	Items       []LineInput    `json:"items"`
}

type CreateOrderResult struct {
	ID         uint      `json:"id"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type OrderService struct {
	store repository.Store
	now   func() time.Time
}

func NewOrderService(store repository.Store) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

func validateOrder(in CreateOrderInput) ([]lineRequest, error) {
	if in.TableNumber == nil || *in.TableNumber <= 0 {
		return nil, invalid("table_number", "table_number required")
	}
	if len(in.Items) == 0 {
		return nil, invalid("items", "items required")
	}

	requests := make([]lineRequest, 0, len(in.Items))
	for i, line := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		itemID, okItem := parseInteger(line.ItemID)
		quantity, okQty := parseInteger(line.Quantity)
		if line.malformed || !okItem || !okQty || itemID <= 0 {
			return nil, invalid(field, "invalid item line at index %d: numeric item_id and quantity required", i)
		}
		if quantity > MaxLineQuantity {
			return nil, invalid(field, "invalid item line at index %d: quantity must not exceed %d", i, MaxLineQuantity)
		}
		requests = append(requests, lineRequest{itemID: uint(itemID), quantity: int(max(quantity, 1))})
	}
	return requests, nil
}

// parseInteger accepts a bare JSON integer. Strings, fractions, null and
// absent values are rejected.
func parseInteger(raw json.RawMessage) (int64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	return v, err == nil
}

// addCents returns total + quantity*price, or false when either step
// leaves the int64 range. Prices and quantities are never negative here.
func addCents(total int64, quantity int, price int64) (int64, bool) {
	if price > 0 && int64(quantity) > math.MaxInt64/price {
		return 0, false
	}
	line := int64(quantity) * price
	if total > math.MaxInt64-line {
		return 0, false
	}
	return total + line, true
}

// Create prices every line at the current catalog price and writes the
// order, its lines and any new customer in one transaction.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*CreateOrderResult, error) {
	requests, err := validateOrder(in)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		TableNumber: *in.TableNumber,
		CreatedAt:   s.now().UTC(),
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if in.WaiterID != nil && *in.WaiterID != 0 {
			waiter, err := tx.FindWaiter(ctx, *in.WaiterID)
			if errors.Is(err, repository.ErrNotFound) {
				return invalid("waiter_id", "waiter not found")
			}
			if err != nil {
				return err
			}
			order.WaiterID = &waiter.ID
		}

		lines := make([]models.OrderItem, 0, len(requests))
		for i, req := range requests {
			item, err := tx.FindItem(ctx, req.itemID)
			if errors.Is(err, repository.ErrNotFound) {
				return invalid("items", "item not found: %d", req.itemID)
			}
			if err != nil {
				return err
			}
			total, ok := addCents(order.TotalCents, req.quantity, item.PriceCents)
			if !ok {
				return invalid(fmt.Sprintf("items[%d]", i), "invalid item line at index %d: order total too large", i)
			}
			order.TotalCents = total
			lines = append(lines, models.OrderItem{
				ItemID:            item.ID,
				Quantity:          req.quantity,
				PriceCentsAtOrder: item.PriceCents,
			})
		}

		customerID, err := resolveCustomer(ctx, tx, in.Customer)
		if err != nil {
			return err
		}
		order.CustomerID = customerID

		return tx.CreateOrder(ctx, order, lines)
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.Inc()
	metrics.OrderValue.Observe(float64(order.TotalCents))

	return &CreateOrderResult{ID: order.ID, TotalCents: order.TotalCents, CreatedAt: order.CreatedAt}, nil
}

// resolveCustomer reuses the first customer with the same phone, otherwise
// creates one. No name and no phone means a walk-in.
func resolveCustomer(ctx context.Context, tx repository.Store, in *CustomerInput) (*uint, error) {
	if in == nil {
		return nil, nil
	}
	name, phone := nonEmpty(in.Name), nonEmpty(in.Phone)
	if name == nil && phone == nil {
		return nil, nil
	}

	if phone != nil {
		existing, err := tx.FindCustomerByPhone(ctx, *phone)
		if err == nil {
			return &existing.ID, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	customer := &models.Customer{Name: name, Phone: phone}
	if err := tx.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer.ID, nil
}

func (s *OrderService) List(ctx context.Context, limit int) ([]models.OrderView, error) {
	orders, err := s.store.ListOrders(ctx, repository.OrderFilter{Limit: NormalizeLimit(limit)})
	if err != nil {
		return nil, err
	}
	return views(orders), nil
}

func (s *OrderService) Get(ctx context.Context, id uint) (*models.OrderView, error) {
	order, err := s.store.FindOrder(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", id, err)
	}
	view := order.View()
	return &view, nil
}

func views(orders []models.Order) []models.OrderView {
	out := make([]models.OrderView, 0, len(orders))
	for _, order := range orders {
		out = append(out, order.View())
	}
	return out
}
