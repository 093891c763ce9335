// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides session authentication. The middleware extracts a
// session token from the Authorization header (Bearer scheme) or the
// "session" cookie, verifies it through a narrow TokenValidator function, and
// stores the resulting user ID in the Gin context under "userID" for
// downstream handlers, logging, and rate-limit keying.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie that carries the session token for browser
// clients. API clients may send the same token as an Authorization bearer
// header instead; the header wins when both are present.
const SessionCookieName = "session"

// TokenValidator verifies a session token and returns the user ID it was
// issued for. Implemented by auth.TokenService.Validate.
type TokenValidator func(token string) (userID string, err error)

// sessionToken pulls the raw token out of the request, header first.
func sessionToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if tok, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(tok)
		}
		return ""
	}
	if tok, err := c.Cookie(SessionCookieName); err == nil {
		return tok
	}
	return ""
}

// RequireAuth returns a middleware that rejects unauthenticated requests with
// a 401 JSON body. On success it sets "userID" in the Gin context.
func RequireAuth(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := sessionToken(c)
		if tok == "" {
			abortUnauthorized(c, "authentication required")
			return
		}
		uid, err := validate(tok)
		if err != nil {
			abortUnauthorized(c, "invalid or expired session")
			return
		}
		c.Set("userID", uid)
		c.Next()
	}
}

// OptionalAuth resolves the user identity when a valid token is present but
// never rejects the request. Public read endpoints use it so responses and
// logs can still be attributed to signed-in users.
func OptionalAuth(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tok := sessionToken(c); tok != "" {
			if uid, err := validate(tok); err == nil {
				c.Set("userID", uid)
			}
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get(requestIDHeader),
		"code":       "unauthorized",
		"message":    msg,
	})
}
