package metrics

import (
	"net/http"

	"github.com/jhoicas/invmanagement/internal/domain/inventory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invmanagement"

// CountsFunc devuelve los tamaños actuales del inventario (lo implementa memory.Inventory.Counts).
type CountsFunc func() (parts, products int)

// Metrics colectores de la aplicación sobre un registro propio.
type Metrics struct {
	Registry *prometheus.Registry

	parts        prometheus.GaugeFunc
	products     prometheus.GaugeFunc
	mutations    *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New crea y registra los colectores. Cada llamada usa un registro nuevo (útil en tests).
// Los gauges de tamaño leen counts en cada scrape, así nunca quedan detrás del store.
func New(counts CountsFunc) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		parts: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "parts",
			Help:      "Current number of parts in the inventory.",
		}, func() float64 {
			parts, _ := counts()
			return float64(parts)
		}),
		products: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "products",
			Help:      "Current number of products in the inventory.",
		}, func() float64 {
			_, products := counts()
			return float64(products)
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "inventory",
			Name:      "mutations_total",
			Help:      "Total number of inventory mutations by entity and event type.",
		}, []string{"entity", "event"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms a ~1s
		}, []string{"method", "path"}),
	}
	m.Registry.MustRegister(
		m.parts, m.products, m.mutations, m.httpRequests, m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// InventoryListener cuenta cada mutación del inventario por entidad y tipo de evento.
func (m *Metrics) InventoryListener() inventory.Listener {
	return func(ev inventory.Event) {
		m.mutations.WithLabelValues(ev.Type.Entity(), string(ev.Type)).Inc()
	}
}

// ObserveHTTP registra una petición atendida.
func (m *Metrics) ObserveHTTP(method, path, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(seconds)
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
