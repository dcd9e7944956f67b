package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "restaurant_api"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests handled by restaurant_api",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_events_published_total",
		Help:      "Menu change events sent to the broker",
	}, []string{"type", "result"})
)

// ObserveRequest фиксирует завершённый HTTP запрос.
// route — шаблон маршрута ("GET /menu/{id}"), а не фактический путь,
// чтобы не плодить метки.
func ObserveRequest(method, route string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveEvent фиксирует попытку публикации события.
func ObserveEvent(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	eventsPublished.WithLabelValues(eventType, result).Inc()
}

// RegisterMenuSize регистрирует gauge с текущим размером меню.
// size вызывается при каждом scrape.
func RegisterMenuSize(reg prometheus.Registerer, size func() int) error {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "menu_items",
		Help:      "Current number of menu items",
	}, func() float64 {
		return float64(size())
	})
	return reg.Register(gauge)
}
