package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_orders_created_total",
		Help: "Orders committed to the store.",
	})

	OrderValue = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "foodcourt_order_value_cents",
		Help:    "Order totals in minor currency units.",
		Buckets: []float64{5000, 10000, 25000, 50000, 100000, 250000, 500000},
	})

	DayEndRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "foodcourt_day_end_runs_total",
		Help: "Day-end runs by outcome.",
	}, []string{"result"})

	OrdersPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "foodcourt_day_end_orders_purged_total",
		Help: "Orders deleted by day-end after a successful export.",
	})
)

const (
	DayEndExported     = "exported"
	DayEndExportFailed = "export_failed"
	DayEndPurgeFailed  = "purge_failed"
)
