package controllers

import (
	"github.com/nimbusdrive/nimbus/pkg/serializer"
	"github.com/nimbusdrive/nimbus/pkg/util"
	"github.com/nimbusdrive/nimbus/service/user"

	"github.com/gin-gonic/gin"
)

// UserLogin authenticates a user session.
func UserLogin(c *gin.Context) {
	var service user.UserLoginService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Login(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// UserRegister creates a new account.
func UserRegister(c *gin.Context) {
	var service user.UserRegisterService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Register(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// UserMe returns the authenticated user's profile and quota usage.
func UserMe(c *gin.Context) {
	currentUser := CurrentUser(c)
	res := serializer.BuildUserResponse(*currentUser)
	c.JSON(200, res)
}

// UserLogout drops the session.
func UserLogout(c *gin.Context) {
	util.ClearSession(c)
	c.JSON(200, serializer.Response{})
}
