package middleware

import (
	"github.com/nimbusdrive/nimbus/pkg/hashid"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// HashID decodes the hashid route parameter "id" of the given type and
// stores the raw key on the context.
func HashID(IDType int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("id") != "" {
			id, err := hashid.DecodeHashID(c.Param("id"), IDType)
			if err == nil {
				c.Set("object_id", id)
				c.Next()
				return
			}
			c.JSON(200, serializer.ParamErr("Failed to parse object ID", nil))
			c.Abort()
			return
		}
		c.Next()
	}
}
