package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lucasll37/myfinanceapp-backend/internal/dto"
	"github.com/lucasll37/myfinanceapp-backend/internal/middleware"
	"github.com/lucasll37/myfinanceapp-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "auth-test-secret"

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newProtectedRouter()
	userID := uuid.NewString()
	token, err := utils.GenerateJWT(userID, testSecret, time.Hour, "test")
	require.NoError(t, err)

	w := doRequest(t, r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID, body["userID"])
}

func TestAuthMiddleware_AllFailuresShareOneMessage(t *testing.T) {
	r := newProtectedRouter()

	expired, err := utils.GenerateJWT(uuid.NewString(), testSecret, -time.Minute, "test")
	require.NoError(t, err)
	tampered, err := utils.GenerateJWT(uuid.NewString(), "some-other-secret", time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "malformed token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: "Bearer " + expired},
		{name: "tampered token", header: "Bearer " + tampered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var res dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			// The cause is never disclosed to the client.
			assert.Equal(t, "invalid or missing authentication token", res.Message)
		})
	}
}
