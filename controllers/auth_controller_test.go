package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"supplier-backend/middleware"
	"supplier-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct horse battery staple"

func newAuthRouter() (*gin.Engine, *services.SessionRegistry) {
	gin.SetMode(gin.TestMode)

	sessions := services.NewSessionRegistry()
	limiter := services.NewRateLimiter()
	ac := NewAuthController(testPassword, sessions, limiter)

	r := gin.New()
	r.POST("/api/login", ac.Login)
	r.POST("/api/logout", middleware.AuthRequired(sessions), ac.Logout)
	r.GET("/api/admin/suppliers", middleware.AuthRequired(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{})
	})
	return r, sessions
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func login(t *testing.T, r http.Handler, password, ip string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/login", gin.H{"password": password}, map[string]string{
		"X-Forwarded-For": ip,
	})
}

func TestLoginIssuesToken(t *testing.T) {
	r, sessions := newAuthRouter()

	w, resp := login(t, r, testPassword, "198.51.100.7")
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := resp["token"].(string)
	require.Len(t, token, 64)
	assert.True(t, sessions.Valid(token))
}

func TestLoginWrongPasswordCountsDown(t *testing.T) {
	r, _ := newAuthRouter()
	ip := "198.51.100.8"

	for i, expected := range []float64{4, 3, 2, 1, 0} {
		w, resp := login(t, r, "nope", ip)
		require.Equal(t, http.StatusUnauthorized, w.Code, "attempt %d", i+1)
		assert.Equal(t, expected, resp["attemptsLeft"], "attempt %d", i+1)
		assert.Contains(t, resp["error"], "invalid password")
	}

	// 6th failed attempt from the same IP is rate limited
	w, resp := login(t, r, "nope", ip)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, float64(30), resp["minutesLeft"])

	// a different IP is unaffected
	w, _ = login(t, r, "nope", "198.51.100.9")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuccessfulLoginClearsCounter(t *testing.T) {
	r, _ := newAuthRouter()
	ip := "198.51.100.10"

	for i := 0; i < 3; i++ {
		login(t, r, "nope", ip)
	}

	w, _ := login(t, r, testPassword, ip)
	require.Equal(t, http.StatusOK, w.Code)

	// counter restarted
	_, resp := login(t, r, "nope", ip)
	assert.Equal(t, float64(4), resp["attemptsLeft"])
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r, _ := newAuthRouter()

	w, resp := login(t, r, testPassword, "198.51.100.11")
	require.Equal(t, http.StatusOK, w.Code)
	token := resp["token"].(string)

	auth := map[string]string{middleware.TokenHeader: token}

	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/suppliers", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodPost, "/api/logout", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["ok"])

	// same token is dead now
	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/suppliers", nil, auth)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = doJSON(t, r, http.MethodPost, "/api/logout", nil, auth)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthGateRejectsMissingOrBogusToken(t *testing.T) {
	r, _ := newAuthRouter()

	w, _ := doJSON(t, r, http.MethodGet, "/api/admin/suppliers", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, "/api/admin/suppliers", nil, map[string]string{
		middleware.TokenHeader: "not-a-real-token",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
