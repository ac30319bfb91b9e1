package controllers

import (
	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// Ping liveness probe, reports the backend version.
func Ping(c *gin.Context) {
	c.JSON(200, serializer.Response{
		Code: 0,
		Data: conf.BackendVersion,
	})
}
