package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	router.GET("/open", OptionalAuthMiddleware(), func(c *gin.Context) {
		userID, ok := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "authenticated": ok})
	})

	return router
}

func performRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)

	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-123", "dev@example.com")
	require.NoError(t, err)

	recorder := performRequest(protectedRouter(), "/protected", "Bearer "+token)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "user-123", body["user_id"])
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	recorder := performRequest(protectedRouter(), "/protected", "")

	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "unauthorized", body["error"])
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	for _, header := range []string{"bare-token", "Basic dXNlcjpwYXNz", "Bearer"} {
		recorder := performRequest(protectedRouter(), "/protected", header)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	recorder := performRequest(protectedRouter(), "/protected", "Bearer not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestOptionalAuthMiddleware_NoToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	recorder := performRequest(protectedRouter(), "/open", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.False(t, body.Authenticated)
}

func TestOptionalAuthMiddleware_WithToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token, err := GenerateJWT("user-456", "dev@example.com")
	require.NoError(t, err)

	recorder := performRequest(protectedRouter(), "/open", "Bearer "+token)

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		UserID        string `json:"user_id"`
		Authenticated bool   `json:"authenticated"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Authenticated)
	assert.Equal(t, "user-456", body.UserID)
}
