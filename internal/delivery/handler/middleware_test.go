package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-service/internal/infrastructure"
)

func newGateTest(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder, *int) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	calls := 0
	return c, rec, &calls
}

func gateHandler(calls *int) echo.HandlerFunc {
	return func(c echo.Context) error {
		*calls++
		return c.NoContent(http.StatusOK)
	}
}

func TestTokenGate_NoHeader(t *testing.T) {
	svc := infrastructure.NewJWTService("test_jwt_secret", time.Hour)
	c, rec, calls := newGateTest(t, "")

	err := TokenGate(svc)(gateHandler(calls))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"No token provided"}`, rec.Body.String())
	assert.Equal(t, 0, *calls)
}

func TestTokenGate_MalformedHeader(t *testing.T) {
	svc := infrastructure.NewJWTService("test_jwt_secret", time.Hour)

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b", "bearer abc"} {
		c, rec, calls := newGateTest(t, header)

		err := TokenGate(svc)(gateHandler(calls))(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.JSONEq(t, `{"message":"Invalid token format"}`, rec.Body.String(), header)
		assert.Equal(t, 0, *calls, header)
	}
}

func TestTokenGate_EmptyToken(t *testing.T) {
	svc := infrastructure.NewJWTService("test_jwt_secret", time.Hour)
	c, rec, calls := newGateTest(t, "Bearer ")

	err := TokenGate(svc)(gateHandler(calls))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	assert.Equal(t, 0, *calls)
}

func TestTokenGate_TamperedSignature(t *testing.T) {
	svc := infrastructure.NewJWTService("test_jwt_secret", time.Hour)
	token, err := svc.GenerateToken("123", "test@example.com")
	require.NoError(t, err)

	c, rec, calls := newGateTest(t, "Bearer "+token+"x")

	err = TokenGate(svc)(gateHandler(calls))(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	assert.Equal(t, 0, *calls)
}

func TestTokenGate_ExpiredToken(t *testing.T) {
	expired := infrastructure.NewJWTService("test_jwt_secret", -time.Second)
	token, err := expired.GenerateToken("123", "test@example.com")
	require.NoError(t, err)

	svc := infrastructure.NewJWTService("test_jwt_secret", time.Hour)
	c, rec, calls := newGateTest(t, "Bearer "+token)

	err = TokenGate(svc)(gateHandler(calls))(c)
	require.NoError(t, err)

	// Expired and tampered tokens are indistinguishable to the client.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token"}`, rec.Body.String())
	assert.Equal(t, 0, *calls)
}

func TestTokenGate_ValidToken(t *testing.T) {
	svc := infrastructure.NewJWTService("test_jwt_secret", time.Hour)
	token, err := svc.GenerateToken("123", "test@example.com")
	require.NoError(t, err)

	c, rec, calls := newGateTest(t, "Bearer "+token)

	var seen *infrastructure.Claims
	handler := func(c echo.Context) error {
		*calls++
		seen = ClaimsFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	err = TokenGate(svc)(handler)(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *calls)
	require.NotNil(t, seen)
	assert.Equal(t, "123", seen.ID)
	assert.Equal(t, "test@example.com", seen.Email)
}

func TestClaimsFromContext_Unauthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, ClaimsFromContext(c))
}
