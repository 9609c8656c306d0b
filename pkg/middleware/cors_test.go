package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

// newCORSEcho creates an Echo instance with the CORS config and a test route.
func newCORSEcho(origins ...string) *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORSWithConfig(CORSConfig(origins)))
	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.POST("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestCORS_AllowedOrigin(t *testing.T) {
	e := newCORSEcho("https://backoffice.kizunaworks.jp")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://backoffice.kizunaworks.jp")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://backoffice.kizunaworks.jp", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORS_BlockedOrigin(t *testing.T) {
	e := newCORSEcho("https://backoffice.kizunaworks.jp")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://evil.com")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	// The request itself succeeds (CORS doesn't block server-side), but the
	// origin must not be reflected.
	assert.NotEqual(t, "https://evil.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	e := newCORSEcho("https://backoffice.kizunaworks.jp")

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://backoffice.kizunaworks.jp")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization,Content-Type")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://backoffice.kizunaworks.jp", rec.Header().Get("Access-Control-Allow-Origin"))

	allowedMethods := rec.Header().Get("Access-Control-Allow-Methods")
	for _, m := range AllowedMethods {
		assert.Contains(t, allowedMethods, m)
	}

	allowedHeaders := rec.Header().Get("Access-Control-Allow-Headers")
	assert.Contains(t, allowedHeaders, "Authorization")
	assert.Contains(t, allowedHeaders, "Content-Type")
}

func TestCORSConfig_DefaultOrigin(t *testing.T) {
	cfg := CORSConfig(nil)

	assert.Equal(t, []string{"http://localhost:3001"}, cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)
}

func TestCORSConfig_NoWildcardOrigin(t *testing.T) {
	cfg := CORSConfig([]string{"https://backoffice.kizunaworks.jp"})

	for _, origin := range cfg.AllowOrigins {
		assert.NotEqual(t, "*", origin)
	}
}

func TestCORS_RequestWithoutOrigin(t *testing.T) {
	// Server-to-server requests (no Origin header) should work normally.
	e := newCORSEcho("https://backoffice.kizunaworks.jp")

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
