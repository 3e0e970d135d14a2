package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_cadastro_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CadastroSubmissions tracks public submission outcomes
	CadastroSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_submissions_total",
			Help: "Number of public registration submissions by outcome",
		},
		[]string{"outcome"},
	)

	// RateLimitRejections tracks submissions rejected by the cooldown window
	RateLimitRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "app_cadastro_rate_limit_rejections_total",
			Help: "Number of submissions rejected by rate limiting",
		},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// NotificationDeliveries tracks operator notification outcomes
	NotificationDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_notification_deliveries_total",
			Help: "Number of operator notification webhook deliveries",
		},
		[]string{"status"},
	)

	// CacheHits tracks cache hits
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_cadastro_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_cadastro_active_connections",
			Help: "Number of active connections",
		},
	)
)
