// Package metrics expone los contadores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pelisrank_http_requests_total",
		Help: "Requests HTTP por método, ruta y status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pelisrank_http_request_duration_seconds",
		Help:    "Duración de requests HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	PredictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pelisrank_prediction_duration_seconds",
		Help:    "Duración del cálculo de una predicción (local o cluster).",
		Buckets: prometheus.DefBuckets,
	})

	PredictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pelisrank_predictions_total",
		Help: "Predicciones calculadas.",
	})

	PredictionsNoSignal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pelisrank_predictions_no_signal_total",
		Help: "Predicciones sin ningún vecino con similitud positiva.",
	})
)

// Middleware instrumenta cada request con contador y latencia. La ruta se
// saca del patrón de chi (no del path crudo) para no explotar cardinalidad.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler es el endpoint /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
