package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/selimist/AiStudio-Wellness/internal/metrics"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("generates a request ID when absent", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())

		var captured string
		router.GET("/test", func(c *gin.Context) {
			captured = GetRequestID(c)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, captured)
		_, err := uuid.Parse(captured)
		assert.NoError(t, err, "generated request ID should be a UUID")
		assert.Equal(t, captured, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps a client-provided request ID", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestID())
		router.GET("/test", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "client-id-42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-42", w.Header().Get(RequestIDHeader))
	})

	t.Run("GetRequestID without middleware returns empty", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Empty(t, GetRequestID(c))
	})
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records HTTP request metrics", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/test", "200"))
		assert.Equal(t, initialTotal+1, newTotal, "request counter should increment")

		afterInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)
		assert.Equal(t, initialInFlight, afterInFlight, "in-flight should return to initial after request")
	})

	t.Run("records error status codes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET("/missing", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/missing", "404"))

		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		newTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/missing", "404"))
		assert.Equal(t, initialTotal+1, newTotal)
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireAdmin())
	router.POST("/admin/events", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"id": "e4"})
	})

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{"admin role passes", "ADMIN", http.StatusCreated},
		{"user role is rejected", "USER", http.StatusForbidden},
		{"organizer role is rejected", "ORGANIZER", http.StatusForbidden},
		{"missing header is rejected", "", http.StatusForbidden},
		{"lowercase admin is rejected", "admin", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/events", nil)
			if tt.role != "" {
				req.Header.Set(UserRoleHeader, tt.role)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
