package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CorsMiddleware())
	r.POST("/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/quote", http.NoBody))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Session-Token")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Draft-Token")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
	})

	t.Run("passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quote", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestHealthCheck(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HealthCheck(c)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.Equal(t, "prognos-api", body["service"])
}
