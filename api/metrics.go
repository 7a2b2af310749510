package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/RemiKalbe/unicode-explorer/metric"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unicode_explorer",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "API requests by route and status code",
	}, []string{"route", "code"})

	requestDurationSec = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "unicode_explorer",
		Subsystem: "api",
		Name:      "request_duration_sec",
		Help:      "API request latency by route",
		Buckets:   metric.SecondsBuckets,
	}, []string{"route"})
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(sw, r)
		requestDurationSec.WithLabelValues(route).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(route, strconv.Itoa(sw.status)).Inc()
	}
}
