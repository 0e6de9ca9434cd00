package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opsboard_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersAdvancedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsboard_orders_advanced_total",
		Help: "Total number of successful order stage advances.",
	},
		[]string{"to_status"},
	)

	ReturnsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opsboard_returns_created_total",
		Help: "Total number of return requests registered.",
	})

	ReturnsAdvancedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsboard_returns_advanced_total",
		Help: "Total number of successful return stage advances.",
	},
		[]string{"to_status"},
	)

	PickupsScheduledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "opsboard_reverse_pickups_scheduled_total",
		Help: "Total number of reverse pickups scheduled.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "opsboard_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	RecordCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "opsboard_record_cache_items",
		Help: "Current number of records held in the change-feed cache.",
	})
)
