// Package metrics expone métricas Prometheus del API y de la capa de almacenamiento.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder es lo que consume la capa de almacenamiento. Nil-safe vía Nop().
type Recorder interface {
	ObserveStoreOp(entity, op string, err error, d time.Duration)
	IncIDConflict(table string)
}

type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	storeOps     *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	idConflicts  *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_http_requests_total",
			Help: "HTTP requests por ruta, método y status",
		}, []string{"route", "method", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zoo_http_request_duration_seconds",
			Help:    "Latencia HTTP por ruta",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_store_operations_total",
			Help: "Operaciones de repositorio por entidad, operación y resultado",
		}, []string{"entity", "op", "outcome"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "zoo_store_operation_duration_seconds",
			Help:    "Latencia de operaciones de repositorio",
			Buckets: prometheus.DefBuckets,
		}, []string{"entity", "op"}),
		idConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "zoo_id_allocation_conflicts_total",
			Help: "Inserts rechazados tras asignar MAX(id)+1",
		}, []string{"table"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.storeOps,
		c.storeLatency,
		c.idConflicts,
	)
	return c
}

func (c *Collector) ObserveStoreOp(entity, op string, err error, d time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.storeOps.WithLabelValues(entity, op, outcome).Inc()
	c.storeLatency.WithLabelValues(entity, op).Observe(d.Seconds())
}

func (c *Collector) IncIDConflict(table string) {
	c.idConflicts.WithLabelValues(table).Inc()
}

// Middleware registra requests usando el patrón de ruta de chi (no el path crudo).
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		c.httpLatency.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

// Handler es el endpoint de scrape.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nop struct{}

func (nop) ObserveStoreOp(string, string, error, time.Duration) {}
func (nop) IncIDConflict(string)                                {}

func Nop() Recorder { return nop{} }
