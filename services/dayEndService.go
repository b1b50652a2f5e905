package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Kariqs/foodcourt-api/metrics"
	"github.com/Kariqs/foodcourt-api/models"
	"github.com/Kariqs/foodcourt-api/reports"
	"github.com/Kariqs/foodcourt-api/repository"
	"github.com/Kariqs/foodcourt-api/utils"
	"gorm.io/datatypes"
)

type DayEndResult struct {
	Filename   string
	Data       []byte
	OrderCount int
	Purged     int64
	TotalCents int64
}

// WaiterTotal is one entry of the per-waiter breakdown stored with each report.
// WaiterID is nil for unassigned orders.
type WaiterTotal struct {
	WaiterID   *uint  `json:"waiter_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
	TotalCents int64  `json:"total_cents"`
}

type DayEndService struct {
	store    repository.Store
	archive  reports.Archive
	notifier reports.Notifier
	now      func() time.Time
}

// NewDayEndService wires the export pipeline. notifier may be nil.
func NewDayEndService(store repository.Store, archive reports.Archive, notifier reports.Notifier) *DayEndService {
	return &DayEndService{store: store, archive: archive, notifier: notifier, now: time.Now}
}

// Run exports every stored order to a workbook, archives it and only then
// deletes exactly the exported orders. Anything committed after the
// snapshot survives for the next run.
func (s *DayEndService) Run(ctx context.Context) (*DayEndResult, error) {
	orders, err := s.store.ListOrders(ctx, repository.OrderFilter{Ascending: true})
	if err != nil {
		return nil, fmt.Errorf("load orders for day-end: %w", err)
	}

	data, err := reports.RenderWorkbook(reports.BuildRows(orders))
	if err != nil {
		metrics.DayEndRuns.WithLabelValues(metrics.DayEndExportFailed).Inc()
		return nil, fmt.Errorf("render day-end workbook: %w", err)
	}

	createdAt := s.now().UTC()
	result := &DayEndResult{
		Filename:   reports.Filename(createdAt),
		Data:       data,
		OrderCount: len(orders),
	}
	if err := s.archive.Save(ctx, result.Filename, data); err != nil {
		metrics.DayEndRuns.WithLabelValues(metrics.DayEndExportFailed).Inc()
		return nil, fmt.Errorf("archive %s: %w", result.Filename, err)
	}

	totals := waiterTotals(orders)
	for _, order := range orders {
		result.TotalCents += order.TotalCents
	}
	encoded, err := json.Marshal(totals)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if len(orders) > 0 {
			purged, err := tx.PurgeOrders(ctx, exportedIDs(orders))
			if err != nil {
				return err
			}
			result.Purged = purged
		}
		return tx.CreateDayEndReport(ctx, &models.DayEndReport{
			Filename:     result.Filename,
			OrderCount:   result.OrderCount,
			TotalCents:   result.TotalCents,
			WaiterTotals: datatypes.JSON(encoded),
			CreatedAt:    createdAt,
		})
	})
	if err != nil {
		metrics.DayEndRuns.WithLabelValues(metrics.DayEndPurgeFailed).Inc()
		log.Printf("Day-end %s was archived but orders were not purged: %v", result.Filename, err)
		return nil, fmt.Errorf("purge orders after %s: %w", result.Filename, err)
	}

	metrics.DayEndRuns.WithLabelValues(metrics.DayEndExported).Inc()
	metrics.OrdersPurged.Add(float64(result.Purged))
	log.Printf("Day-end %s exported %d orders, purged %d", result.Filename, result.OrderCount, result.Purged)

	if s.notifier != nil {
		summary := reports.Summary{
			Filename:   result.Filename,
			OrderCount: result.OrderCount,
			TotalCents: result.TotalCents,
			Total:      utils.FormatRupees(result.TotalCents),
			CreatedAt:  createdAt,
		}
		if err := s.notifier.Notify(ctx, summary); err != nil {
			log.Printf("Error notifying day-end webhook for %s: %v", result.Filename, err)
		}
	}

	return result, nil
}

func (s *DayEndService) ListReports(ctx context.Context, limit int) ([]models.DayEndReport, error) {
	return s.store.ListDayEndReports(ctx, NormalizeLimit(limit))
}

func exportedIDs(orders []models.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}

func waiterTotals(orders []models.Order) []WaiterTotal {
	totals := []WaiterTotal{}
	// ids start at 1, so key 0 collects unassigned orders
	positions := map[uint]int{}

	for _, order := range orders {
		var key uint
		if order.WaiterID != nil {
			key = *order.WaiterID
		}
		pos, ok := positions[key]
		if !ok {
			entry := WaiterTotal{Name: "unassigned"}
			if order.WaiterID != nil {
				entry.WaiterID = order.WaiterID
				entry.Name = fmt.Sprintf("waiter %d", key)
				if order.Waiter != nil {
					entry.Name = order.Waiter.Name
				}
			}
			totals = append(totals, entry)
			pos = len(totals) - 1
			positions[key] = pos
		}
		totals[pos].OrderCount++
		totals[pos].TotalCents += order.TotalCents
	}
	return totals
}
