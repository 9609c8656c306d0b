package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kizunaworks/backoffice/pkg/phone"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneRequest(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInspectPhone_JapaneseMobile(t *testing.T) {
	h := NewPhoneHandler()

	c, rec := phoneRequest(t, "/api/v1/phone/inspect", `{"phone":"090-1234-5678"}`)

	require.NoError(t, h.InspectPhone(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp phone.Inspection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "09012345678", resp.Digits)
	assert.Equal(t, "+819012345678", resp.E164Format)
	assert.Equal(t, "JP", resp.Region)
}

func TestInspectPhone_MissingPhone(t *testing.T) {
	h := NewPhoneHandler()

	c, rec := phoneRequest(t, "/api/v1/phone/inspect", `{}`)

	require.NoError(t, h.InspectPhone(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNormalizePhone_StripsFormatting(t *testing.T) {
	h := NewPhoneHandler()

	c, rec := phoneRequest(t, "/api/v1/phone/normalize", `{"phone":"+81 (90) 1234-5678"}`)

	require.NoError(t, h.NormalizePhone(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp NormalizePhoneResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "819012345678", resp.Digits)
}

func TestNormalizePhone_MissingPhone(t *testing.T) {
	h := NewPhoneHandler()

	c, rec := phoneRequest(t, "/api/v1/phone/normalize", `{"phone":""}`)

	require.NoError(t, h.NormalizePhone(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
