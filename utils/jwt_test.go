package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnqbao/gau-recipe-service/config"
)

func testEnvConfig(secret string) *config.EnvConfig {
	cfg := &config.EnvConfig{}
	cfg.JWT.SecretKey = secret
	return cfg
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	c.Request = req
	return c
}

func TestExtractTokenFromBearerHeader(t *testing.T) {
	c := newTestContext(t)
	c.Request.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "abc.def.ghi", ExtractToken(c))
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	c := newTestContext(t)
	c.Request.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")
	assert.Equal(t, "cookie-token", ExtractToken(c))
}

func TestExtractTokenMissing(t *testing.T) {
	c := newTestContext(t)
	assert.Equal(t, "", ExtractToken(c))

	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Equal(t, "", ExtractToken(c))
}

func TestParseTokenRoundTrip(t *testing.T) {
	cfg := testEnvConfig("test-secret")
	userID := uuid.New().String()
	signed := signedToken(t, "test-secret", jwt.MapClaims{"user_id": userID})

	token, err := ParseToken(signed, cfg)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID, claims["user_id"])
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := testEnvConfig("right-secret")
	signed := signedToken(t, "wrong-secret", jwt.MapClaims{"user_id": uuid.New().String()})

	_, err := ParseToken(signed, cfg)
	assert.Error(t, err)
}

func TestInjectClaimsAndGetUserID(t *testing.T) {
	c := newTestContext(t)
	userID := uuid.New()

	err := InjectClaimsToContext(c, jwt.MapClaims{"user_id": userID.String(), "permission": "member"})
	require.NoError(t, err)

	got, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
	assert.Equal(t, "member", c.GetString("permission"))
}

func TestInjectClaimsRejectsBadUserID(t *testing.T) {
	c := newTestContext(t)

	assert.Error(t, InjectClaimsToContext(c, jwt.MapClaims{"user_id": "not-a-uuid"}))
	assert.Error(t, InjectClaimsToContext(c, jwt.MapClaims{}))
	assert.Error(t, InjectClaimsToContext(c, jwt.MapClaims{"user_id": 42}))
}

func TestGetUserIDFromContextSupportsUUIDValue(t *testing.T) {
	c := newTestContext(t)
	userID := uuid.New()
	c.Set("user_id", userID)

	got, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}
