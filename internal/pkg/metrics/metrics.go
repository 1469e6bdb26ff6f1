package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dayflow"

var (
	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests"},
		[]string{"method", "path", "status"},
	)
	loginTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "logins_total", Help: "Login attempts by outcome"},
		[]string{"outcome"},
	)
	attendanceEventTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "attendance_events_total", Help: "Attendance ledger transitions by event"},
		[]string{"event"},
	)
	leaveDecisionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "leave_decisions_total", Help: "Leave approvals and rejections"},
		[]string{"status"},
	)
	provisionedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "employees_provisioned_total", Help: "Employee accounts created by administrators"},
	)
)

func init() {
	prometheus.MustRegister(reqDuration, reqTotal, loginTotal, attendanceEventTotal, leaveDecisionTotal, provisionedTotal)
}

// Middleware records basic HTTP metrics, labelled by chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		labels := prometheus.Labels{"method": r.Method, "path": path, "status": strconv.Itoa(status)}
		reqDuration.With(labels).Observe(time.Since(start).Seconds())
		reqTotal.With(labels).Inc()
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveLogin(outcome string) {
	loginTotal.WithLabelValues(outcome).Inc()
}

func ObserveAttendance(event string) {
	attendanceEventTotal.WithLabelValues(event).Inc()
}

func ObserveLeaveDecision(status string) {
	leaveDecisionTotal.WithLabelValues(status).Inc()
}

func ObserveProvisioned() {
	provisionedTotal.Inc()
}
