package metrics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "urlshortener_http_requests_total",
		Help: "HTTP requests processed, by method and status code.",
	}, []string{"method", "status"})

	RedirectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_redirects_total",
		Help: "Successful short-token resolutions.",
	})

	ClicksRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_clicks_recorded_total",
		Help: "Click events durably persisted.",
	})

	URLsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "urlshortener_urls_created_total",
		Help: "Shortened URLs created.",
	})
)

// Middleware counts every request by method and final status.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		RequestsTotal.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
