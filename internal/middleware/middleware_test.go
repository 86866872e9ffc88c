package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"hr-agent/internal/middleware"
	"hr-agent/pkg/log"
	"hr-agent/pkg/metrics"
)

func engine(mw middleware.Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.Metrics())
	r.GET("/chat/hr_help", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestID(c.Request.Context()))
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := engine(middleware.New(log.NewNop(), 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat/hr_help", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "req-1", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/chat/hr_help", nil))
	generated := w.Header().Get(middleware.HeaderRequestID)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	r := engine(middleware.New(log.NewNop(), 60))

	codes := map[int]int{}
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/chat/hr_help", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes[w.Code]++
	}
	assert.Equal(t, 6, codes[http.StatusOK])
	assert.Equal(t, 4, codes[http.StatusTooManyRequests])

	// Another client has its own bucket.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chat/hr_help", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics(t *testing.T) {
	r := engine(middleware.New(log.NewNop(), 0))
	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/chat/hr_help", "200"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/chat/hr_help", nil))

	after := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/chat/hr_help", "200"))
	assert.Equal(t, before+1, after)
}
