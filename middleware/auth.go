package middleware

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// CurrentUser resolves the session into a user record and stores it on
// the context.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		uid := session.Get("user_id")
		if uid != nil {
			user, err := model.GetUserByID(uid)
			if err == nil && user.Status == model.Active {
				c.Set("user", &user)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests without an authenticated user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, _ := c.Get("user"); user != nil {
			if _, ok := user.(*model.User); ok {
				c.Next()
				return
			}
		}

		c.JSON(200, serializer.CheckLogin())
		c.Abort()
	}
}
