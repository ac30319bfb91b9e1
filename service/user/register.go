package user

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// UserRegisterService creates a new account.
type UserRegisterService struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Nick     string `form:"nick" json:"nick" binding:"required,min=1,max=50"`
	Password string `form:"password" json:"password" binding:"required,min=4,max=128"`
}

// Register creates the account with the default quota.
func (service *UserRegisterService) Register(c *gin.Context) serializer.Response {
	user := model.NewUser()
	user.Email = service.Email
	user.Nick = service.Nick
	user.Status = model.Active
	if err := user.SetPassword(service.Password); err != nil {
		return serializer.Err(serializer.CodeNotSet, "Failed to derive password digest", err)
	}

	if _, err := model.GetActiveUserByEmail(service.Email); err == nil {
		return serializer.Err(serializer.CodeObjectExist, "Email already in use", nil)
	}

	if err := model.DB.Create(&user).Error; err != nil {
		return serializer.DBErr("", err)
	}

	return serializer.BuildUserResponse(user)
}
