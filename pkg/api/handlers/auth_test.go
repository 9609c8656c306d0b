package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kizunaworks/backoffice/config"
	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/enttest"
	"github.com/kizunaworks/backoffice/ent/user"
	"github.com/kizunaworks/backoffice/pkg/auth"
	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*ent.Client, *AuthHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
	}
	return client, NewAuthHandler(client, cfg, nil)
}

func seedAccount(t *testing.T, client *ent.Client, email, password string, role user.Role) *ent.User {
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetName("admin-" + email).
		SetEmail(email).
		SetPasswordHash(hash).
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func postJSON(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_Success(t *testing.T) {
	client, h := setupAuthTest(t)
	seedAccount(t, client, "admin@example.com", "secret123", user.RoleAdmin)

	c, rec := postJSON(t, "/auth/login", `{"email":"admin@example.com","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)

	claims, err := auth.ValidateJWT(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	client, h := setupAuthTest(t)
	seedAccount(t, client, "admin@example.com", "secret123", user.RoleAdmin)

	c, rec := postJSON(t, "/auth/login", `{"email":"admin@example.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	_, h := setupAuthTest(t)

	c, rec := postJSON(t, "/auth/login", `{"email":"nobody@example.com","password":"secret123"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidPayload(t *testing.T) {
	_, h := setupAuthTest(t)

	c, rec := postJSON(t, "/auth/login", `{"email":"not-an-email","password":""}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe_ReturnsAccount(t *testing.T) {
	client, h := setupAuthTest(t)
	u := seedAccount(t, client, "rep@example.com", "secret123", user.RoleUser)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", u.ID)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, "rep@example.com", resp.Email)
}

func TestMe_MissingContext(t *testing.T) {
	_, h := setupAuthTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
