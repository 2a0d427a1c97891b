package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa os contadores e histogramas expostos em /metrics
type Metrics struct {
	ExtractionsTotal     *prometheus.CounterVec
	ExtractionDuration   *prometheus.HistogramVec
	ExtractionRecords    prometheus.Counter
	UpstreamCallsTotal   *prometheus.CounterVec
	UpstreamDuration     prometheus.Histogram
	UpstreamRetriesTotal *prometheus.CounterVec
	HistoryWriteFailures prometheus.Counter
}

// New registra as métricas no registrador padrão do Prometheus
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registra as métricas em um registrador específico (útil em testes)
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ExtractionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "extractions_total",
				Help: "Total de extrações executadas",
			},
			[]string{"level", "status"},
		),

		ExtractionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "extraction_duration_seconds",
				Help:    "Duração das extrações em segundos",
				Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"level"},
		),

		ExtractionRecords: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "extraction_records_total",
				Help: "Total de registros extraídos",
			},
		),

		UpstreamCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_calls_total",
				Help: "Total de chamadas à API do Meta",
			},
			[]string{"status"},
		),

		UpstreamDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "upstream_call_duration_seconds",
				Help:    "Duração das chamadas à API do Meta em segundos",
				Buckets: prometheus.DefBuckets,
			},
		),

		UpstreamRetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_retries_total",
				Help: "Total de retries contra a API do Meta",
			},
			[]string{"reason"},
		),

		HistoryWriteFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "extraction_history_write_failures_total",
				Help: "Falhas ao gravar o histórico de extrações",
			},
		),
	}
}

// RecordExtraction registra o resultado de uma extração
func (m *Metrics) RecordExtraction(level, status string, duration time.Duration, records int) {
	m.ExtractionsTotal.WithLabelValues(level, status).Inc()
	m.ExtractionDuration.WithLabelValues(level).Observe(duration.Seconds())
	m.ExtractionRecords.Add(float64(records))
}

// RecordUpstreamCall registra uma chamada à API externa
func (m *Metrics) RecordUpstreamCall(status string, duration time.Duration) {
	m.UpstreamCallsTotal.WithLabelValues(status).Inc()
	m.UpstreamDuration.Observe(duration.Seconds())
}

// RecordUpstreamRetry registra um retry contra a API externa
func (m *Metrics) RecordUpstreamRetry(reason string) {
	m.UpstreamRetriesTotal.WithLabelValues(reason).Inc()
}

// RecordHistoryWriteFailure registra uma falha ao persistir o histórico
func (m *Metrics) RecordHistoryWriteFailure() {
	m.HistoryWriteFailures.Inc()
}
