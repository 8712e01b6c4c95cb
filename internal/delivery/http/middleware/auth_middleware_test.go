package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inndoor/config"
	"inndoor/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountID := uuid.New()
	accessToken, _, err := tokenSvc.GenerateTokens(accountID, []string{"AGENT"})
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "Bearer "+accessToken)

	handlerCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true

		gotID, ok := GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, accountID, gotID)

		roles, ok := c.Get("roles").([]string)
		assert.True(t, ok)
		assert.Equal(t, []string{"AGENT"}, roles)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run without credentials")

		return nil
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NonBearerHeader(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	handler := m.Authenticate(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ForgedToken(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "some-other-secret"
	otherCfg.SecretKey.Refresh = "some-other-refresh"
	otherSvc, err := auth.NewJWTService(otherCfg)
	require.NoError(t, err)

	forged, _, err := otherSvc.GenerateTokens(uuid.New(), []string{"TENANT"})
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, cfg)
	c, rec := newAuthTestContext(t, "Bearer "+forged)

	handler := m.Authenticate(func(c echo.Context) error { return nil })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	cfg := newAuthTestConfig()
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	m := NewAuthMiddleware(tokenSvc, cfg)

	t.Run("role present", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set("roles", []string{"AGENT"})

		handler := m.RequireRole("AGENT")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("role missing", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")
		c.Set("roles", []string{"TENANT"})

		handler := m.RequireRole("AGENT")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated context", func(t *testing.T) {
		c, rec := newAuthTestContext(t, "")

		handler := m.RequireRole("AGENT")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
