// Package metrics registra las métricas Prometheus de la API y las expone
// al resto de la aplicación a través de funciones y del puerto AssistantMetrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/gestao-api/internal/application/ports"
)

const namespace = "gestao"

var (
	// httpRequests cuenta requests por método, ruta y status.
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests",
	}, []string{"method", "route", "status"})

	// httpDuration latencia por método y ruta.
	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route"})

	// assistantFindings hallazgos producidos por el asistente.
	// Labels: kind (insight, alerta, recomendacao, tendencia, acao)
	assistantFindings = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "assistant",
		Name:      "findings_total",
		Help:      "Total findings produced by the assistant rules",
	}, []string{"kind"})

	assistantHealthScore = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "assistant",
		Name:      "health_score",
		Help:      "Last computed business health score (0-100)",
	})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Login attempts by outcome",
	}, []string{"outcome"})
)

// ObserveHTTP registra un request terminado.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveLogin registra el resultado de un intento de login (ok, invalid, inactive, throttled).
func ObserveLogin(outcome string) {
	loginAttempts.WithLabelValues(outcome).Inc()
}

var _ ports.AssistantMetrics = Assistant{}

// Assistant adaptador de ports.AssistantMetrics sobre los colectores globales.
type Assistant struct{}

func (Assistant) ObserveFindings(kind string, n int) {
	if n <= 0 {
		return
	}
	assistantFindings.WithLabelValues(kind).Add(float64(n))
}

func (Assistant) SetHealthScore(score int) {
	assistantHealthScore.Set(float64(score))
}
