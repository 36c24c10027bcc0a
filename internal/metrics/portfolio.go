package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PortfolioMetrics счётчики загрузок агрегата и мутаций портфолио.
// Нулевой или nil экземпляр ничего не пишет.
type PortfolioMetrics struct {
	loads        *prometheus.CounterVec
	loadDuration prometheus.Histogram
	duplicateIDs prometheus.Counter
	mutations    *prometheus.CounterVec
}

// NewPortfolioMetrics регистрирует метрики на переданном registerer.
func NewPortfolioMetrics(reg prometheus.Registerer) *PortfolioMetrics {
	if reg == nil {
		return &PortfolioMetrics{}
	}
	loads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_aggregate_loads_total",
		Help: "Aggregate loads by result.",
	}, []string{"result"})
	loadDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "portfolio_aggregate_load_duration_seconds",
		Help:    "Duration of aggregate loads in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	duplicateIDs := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "portfolio_aggregate_duplicate_ids_total",
		Help: "Items dropped because a later source reused the same id.",
	})
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_mutations_total",
		Help: "Owner mutations by operation and result.",
	}, []string{"operation", "result"})
	reg.MustRegister(loads, loadDuration, duplicateIDs, mutations)
	return &PortfolioMetrics{
		loads:        loads,
		loadDuration: loadDuration,
		duplicateIDs: duplicateIDs,
		mutations:    mutations,
	}
}

// ObserveLoad записывает результат и длительность загрузки агрегата.
func (m *PortfolioMetrics) ObserveLoad(duration time.Duration, err error) {
	if m == nil || m.loads == nil {
		return
	}
	m.loads.WithLabelValues(result(err)).Inc()
	m.loadDuration.Observe(duration.Seconds())
}

// AddDuplicateIDs учитывает вытесненные дубликаты.
func (m *PortfolioMetrics) AddDuplicateIDs(n int) {
	if m == nil || m.duplicateIDs == nil || n <= 0 {
		return
	}
	m.duplicateIDs.Add(float64(n))
}

// ObserveMutation учитывает загрузку, правку или удаление ролика.
func (m *PortfolioMetrics) ObserveMutation(operation string, err error) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(operation, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
