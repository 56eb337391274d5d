package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"supplier-backend/middleware"
	"supplier-backend/services"
	"supplier-backend/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Password string `json:"password"`
}

// AuthController owns the single-admin login. The password is a shared
// secret from the environment, compared in constant time; no per-user
// credentials exist, so there is nothing to hash at rest.
type AuthController struct {
	Password string
	Sessions *services.SessionRegistry
	Limiter  *services.RateLimiter
}

func NewAuthController(password string, sessions *services.SessionRegistry, limiter *services.RateLimiter) *AuthController {
	return &AuthController{
		Password: password,
		Sessions: sessions,
		Limiter:  limiter,
	}
}

// POST /api/login
func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	ip := utils.ClientIP(c)

	if subtle.ConstantTimeCompare([]byte(payload.Password), []byte(a.Password)) == 1 {
		// a correct password always wins and resets the counter
		a.Limiter.Clear(ip)

		token, err := a.Sessions.Issue()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
		return
	}

	if err := a.Limiter.Check(ip); err != nil {
		var limited *services.RateLimitedError
		if errors.As(err, &limited) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       limited.Error(),
				"minutesLeft": limited.MinutesLeft,
			})
			return
		}
	}

	left := a.Limiter.RecordFailure(ip)
	credErr := &services.InvalidCredentialsError{AttemptsLeft: left}
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":        credErr.Error(),
		"attemptsLeft": left,
	})
}

// POST /api/logout — idempotent; the gate already checked the token is live.
func (a *AuthController) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.TokenHeader)
	a.Sessions.Revoke(token)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
