package middleware

import (
	"net/http"
	"strings"

	"github.com/Dadssi/Calendrier-Editoriel/internal/util"

	"github.com/gin-gonic/gin"
)

// CtxAdminID is the context key under which RequireAuth stores the verified
// admin id (the token subject) for downstream handlers.
const CtxAdminID = "adminID"

// RequireAuth verifies the bearer token before any protected handler runs.
// The credential is taken from "Authorization: Bearer <token>", falling back
// to an "X-Auth-Token" header treated as a bearer token. Header name lookup
// is case-insensitive (net/http canonicalizes names).
func RequireAuth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			if v := c.GetHeader("X-Auth-Token"); v != "" {
				authHeader = "Bearer " + v
			}
		}

		var tokenStr string
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = strings.TrimSpace(parts[1])
			}
		}

		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Missing auth token")
			c.Abort()
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.Subject == "" {
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxAdminID, claims.Subject)
		c.Next()
	}
}
