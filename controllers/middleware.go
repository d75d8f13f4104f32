package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"
)

// RequireAuth validates the Bearer token and stores the caller's user ID
// in the context for CurrentUserID.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			RespondCustomStatusErr(c, http.StatusForbidden, []error{ErrAccessDenied})
			return
		}

		token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrAccessDenied
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			RespondCustomStatusErr(c, http.StatusForbidden, []error{ErrAccessDenied})
			return
		}

		claims := token.Claims.(*jwt.RegisteredClaims)
		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || userID == 0 {
			RespondCustomStatusErr(c, http.StatusForbidden, []error{ErrAccessDenied})
			return
		}

		c.Set("userID", uint(userID))
		c.Next()
	}
}

func CurrentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// RateLimit throttles each client IP with its own token bucket.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := map[string]*rate.Limiter{}

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		limiter, ok := limiters[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[ip] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
