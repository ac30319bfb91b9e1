package serializer

import (
	"time"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/hashid"
)

// User serialized account info.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Nick       string    `json:"nick"`
	Used       uint64    `json:"used"`
	MaxStorage uint64    `json:"max_storage"`
	CreatedAt  time.Time `json:"created_at"`
}

// BuildUser serializes a user model.
func BuildUser(user model.User) User {
	return User{
		ID:         hashid.HashID(user.ID, hashid.UserID),
		Email:      user.Email,
		Nick:       user.Nick,
		Used:       user.Storage,
		MaxStorage: user.MaxStorage,
		CreatedAt:  user.CreatedAt,
	}
}

// BuildUserResponse wraps a serialized user into a response.
func BuildUserResponse(user model.User) Response {
	return Response{
		Data: BuildUser(user),
	}
}
