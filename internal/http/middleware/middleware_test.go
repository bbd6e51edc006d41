package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDashboardSecret(t *testing.T) {
	r := gin.New()
	r.Use(DashboardSecret("s3cret"))
	r.DELETE("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodDelete, "/x", nil)
	w := serve(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid dashboard secret"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodDelete, "/x", nil)
	req.Header.Set(SecretHeader, "s3cret")
	assert.Equal(t, http.StatusNoContent, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/x", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	assert.Equal(t, http.StatusNoContent, serve(r, req).Code)
}

func TestDashboardSecretRequiresBearerScheme(t *testing.T) {
	r := gin.New()
	r.Use(DashboardSecret("s3cret"))
	r.DELETE("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, auth := range []string{"s3cret", "Basic s3cret", "bearer s3cret"} {
		req := httptest.NewRequest(http.MethodDelete, "/x", nil)
		req.Header.Set("Authorization", auth)
		assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code, auth)
	}
}

func TestDashboardSecretDisabled(t *testing.T) {
	r := gin.New()
	r.Use(DashboardSecret(""))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(rate.Limit(0.001), 2))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodPost, "/x", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodPost, "/x", nil)).Code)
	w := serve(r, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDHeader)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	rid := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, rid)
	assert.Equal(t, rid, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = serve(r, req)
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
}
