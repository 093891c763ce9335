package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountersAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())

	r.GET("/feed", func(c *gin.Context) {
		c.String(http.StatusOK, "ok") // body written, size >= 0
	})
	r.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent) // no body, size stays -1
	})

	// Baselines first; collectors are package globals shared across tests.
	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/feed", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/nope", "404"))

	for _, path := range []string{"/feed", "/nope", "/empty"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/feed", "200")); got != baseOK+1 {
		t.Fatalf("counter /feed 200 = %v; want %v", got, baseOK+1)
	}
	// Unmatched routes fall back to the raw URL path label.
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/nope", "404")); got != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got, base404+1)
	}
	// In-flight gauge returns to zero once requests complete.
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
