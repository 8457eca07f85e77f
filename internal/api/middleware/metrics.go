package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/BRB-ScheduleService/pkg/metrics"
)

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает метрики HTTP запросов: счётчик и длительность.
// В качестве path используется шаблон роута, чтобы не плодить лейблы
// на каждый ID в URL
func MetricsMiddleware(collector *metrics.Metrics, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			collector.ObserveHTTPRequest(
				r.Method,
				path,
				strconv.Itoa(recorder.status),
				time.Since(start).Seconds(),
			)
		})
	}
}
