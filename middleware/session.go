package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Store session storage backend
var Store sessions.Store

// Session initializes cookie-backed sessions.
func Session(secret string) gin.HandlerFunc {
	Store = cookie.NewStore([]byte(secret))
	return sessions.Sessions("nimbus-session", Store)
}
