package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_CountsByRouteAndCollapsesUnmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics())
	r.GET("/articles/:article_id", func(c *gin.Context) { c.String(http.StatusOK, "x") })

	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/articles/:article_id", "200"))
	baseMiss := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedRoute, "404"))

	for _, p := range []string{"/articles/1", "/articles/2", "/a", "/b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/articles/:article_id", "200")) - baseOK; got != 2 {
		t.Fatalf("route counter delta = %v; want 2", got)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedRoute, "404")) - baseMiss; got != 2 {
		t.Fatalf("unmatched counter delta = %v; want 2", got)
	}
	if got := testutil.ToFloat64(httpInflight); got != 0 {
		t.Fatalf("inflight = %v; want 0", got)
	}
}

func TestObserveError(t *testing.T) {
	base := testutil.ToFloat64(apiErrors.WithLabelValues("TopicNotFound"))
	ObserveError("TopicNotFound")
	if got := testutil.ToFloat64(apiErrors.WithLabelValues("TopicNotFound")) - base; got != 1 {
		t.Fatalf("delta = %v; want 1", got)
	}
}
