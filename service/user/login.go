package user

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/serializer"
	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/gin-gonic/gin"
)

// UserLoginService authenticates an existing account.
type UserLoginService struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=4,max=128"`
}

// Login verifies the credentials and opens a session.
func (service *UserLoginService) Login(c *gin.Context) serializer.Response {
	expectedUser, err := model.GetActiveUserByEmail(service.Email)
	if err != nil {
		return serializer.Err(serializer.CodeCheckLogin, "Wrong email or password", err)
	}

	if authOK, _ := expectedUser.CheckPassword(service.Password); !authOK {
		return serializer.Err(serializer.CodeCheckLogin, "Wrong email or password", nil)
	}

	util.SetSession(c, map[string]interface{}{
		"user_id": expectedUser.ID,
	})

	return serializer.BuildUserResponse(expectedUser)
}
