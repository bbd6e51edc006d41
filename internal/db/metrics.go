package db

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueryLatency is the duration of one scoped statement, connection acquire included.
	QueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dashboard_db_query_duration_seconds",
			Help: "Duration of Postgres statements",
		},
		[]string{"op"},
	)

	// QueryTotal is the number of statements by outcome.
	QueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_db_queries_total",
			Help: "Total number of Postgres statements",
		},
		[]string{"op", "outcome"},
	)
)

func observeQuery(op string, start time.Time, err error) {
	QueryLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	QueryTotal.WithLabelValues(op, outcome).Inc()
}
