package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder for the
// given HTTP method and path. It returns both the context and the recorder so
// callers can inspect the written response.
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// parseBody is a small helper that unmarshals the recorder body into an
// ErrorResponse, failing the test on any JSON error.
func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// captureLog redirects the standard logger to a buffer for the duration of fn
// and returns everything that was logged.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	fn()
	return buf.String()
}

func TestValidationError_StatusCode(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/exports")
	err := ValidationError(c, errors.New("field 'start_date' is required"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidationError_ResponseBody(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/exports")
	_ = ValidationError(c, errors.New("field 'start_date' is required"))

	resp := parseBody(t, rec)
	assert.Equal(t, "validation_error", resp.Error)
	assert.NotEmpty(t, resp.Message)
}

func TestValidationError_NoInternalDetails(t *testing.T) {
	internalMsg := "pq: duplicate key value violates unique constraint"
	c, rec := newContext(http.MethodPost, "/api/v1/exports")
	_ = ValidationError(c, errors.New(internalMsg))

	assert.NotContains(t, rec.Body.String(), internalMsg)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestValidationError_LogsInternalError(t *testing.T) {
	internalMsg := "field validation failed: start_date"
	logged := captureLog(func() {
		c, _ := newContext(http.MethodPost, "/api/v1/exports")
		_ = ValidationError(c, errors.New(internalMsg))
	})

	assert.Contains(t, logged, "[VALIDATION ERROR]")
	assert.Contains(t, logged, internalMsg)
	assert.Contains(t, logged, "/api/v1/exports")
}

func TestDatabaseError_StatusCode(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/integrations/calllog/sync")
	err := DatabaseError(c, errors.New("connection refused"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDatabaseError_NoInternalDetails(t *testing.T) {
	internalMsg := "pq: relation \"sales_contacts\" does not exist"
	c, rec := newContext(http.MethodPost, "/api/v1/integrations/calllog/sync")
	_ = DatabaseError(c, errors.New(internalMsg))

	resp := parseBody(t, rec)
	assert.Equal(t, "database_error", resp.Error)
	assert.NotContains(t, rec.Body.String(), internalMsg)
}

func TestUpstreamError_StatusCodeAndBody(t *testing.T) {
	internalMsg := "fetch page 3: status 500"
	c, rec := newContext(http.MethodGet, "/api/v1/integrations/calllog/peek")
	err := UpstreamError(c, errors.New(internalMsg))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "upstream_error", resp.Error)
	assert.NotContains(t, rec.Body.String(), internalMsg)
}

func TestUpstreamError_LogsInternalError(t *testing.T) {
	logged := captureLog(func() {
		c, _ := newContext(http.MethodGet, "/api/v1/integrations/calllog/peek")
		_ = UpstreamError(c, errors.New("status 502"))
	})

	assert.Contains(t, logged, "[UPSTREAM ERROR]")
	assert.Contains(t, logged, "status 502")
}

func TestInternalError_StatusCode(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/exports")
	_ = InternalError(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "internal_error", resp.Error)
}

func TestUnauthorizedError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/auth/me")
	_ = UnauthorizedError(c, "missing token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "unauthorized", resp.Error)
	// The reason is for logs only, never for the response
	assert.NotContains(t, rec.Body.String(), "missing token")
}

func TestForbiddenError(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/integrations/calllog/sync")
	_ = ForbiddenError(c, "admin role required")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "forbidden", resp.Error)
}

func TestNotFoundError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/v1/integrations/calllog/status")
	_ = NotFoundError(c, "sync_run")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "not_found", resp.Error)
}

func TestConflictError_UsesGivenMessage(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/v1/integrations/calllog/sync")
	_ = ConflictError(c, "a sync is already running")
	assert.Equal(t, http.StatusConflict, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "conflict", resp.Error)
	assert.Equal(t, "a sync is already running", resp.Message)
}
