package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	// Scheduling
	// SlotFallbackTotal считает срабатывания nearest-slot деградации:
	// время записи не совпало ни с одним слотом сетки. Рост метрики
	// сигнализирует о проблемах качества данных у источника.
	SlotFallbackTotal *prometheus.CounterVec

	// ConflictRejectionsTotal считает отклонённые переносы записей
	ConflictRejectionsTotal *prometheus.CounterVec

	// MovesTotal считает успешные переносы записей
	MovesTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),

		DBQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		SlotFallbackTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_slot_fallback_total",
			Help:        "Appointments resolved to the nearest grid slot because their stored time does not align to the grid",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		ConflictRejectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_conflict_rejections_total",
			Help:        "Appointment moves rejected due to a scheduling conflict",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		MovesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "calendar_moves_total",
			Help:        "Successfully committed appointment moves",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}
}

// IncSlotFallback инкрементирует счётчик nearest-slot деградации.
// Безопасен при nil-получателе (метрики выключены в конфигурации).
func (m *Metrics) IncSlotFallback(operation string) {
	if m == nil {
		return
	}
	m.SlotFallbackTotal.WithLabelValues(operation).Inc()
}

// IncConflictRejection инкрементирует счётчик отклонённых переносов
func (m *Metrics) IncConflictRejection(reason string) {
	if m == nil {
		return
	}
	m.ConflictRejectionsTotal.WithLabelValues(reason).Inc()
}

// IncMove инкрементирует счётчик успешных переносов
func (m *Metrics) IncMove(result string) {
	if m == nil {
		return
	}
	m.MovesTotal.WithLabelValues(result).Inc()
}
