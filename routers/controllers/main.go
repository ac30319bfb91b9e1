package controllers

import (
	"encoding/json"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ParamErrorMsg returns a readable validation error message.
func ParamErrorMsg(filed string, tag string) string {
	switch tag {
	case "required":
		return filed + " is required"
	case "email":
		return filed + " is not a valid email address"
	case "min":
		return filed + " is too short"
	case "max":
		return filed + " is too long"
	}
	return ""
}

// ErrorResponse wraps a binding error into a response.
func ErrorResponse(err error) serializer.Response {
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, e := range ve {
			return serializer.ParamErr(
				ParamErrorMsg(e.Field(), e.Tag()),
				err,
			)
		}
	}

	if _, ok := err.(*json.UnmarshalTypeError); ok {
		return serializer.ParamErr("Mismatched JSON field type", err)
	}

	return serializer.ParamErr("Invalid request", err)
}

// CurrentUser returns the authenticated user stored on the context.
func CurrentUser(c *gin.Context) *model.User {
	if user, _ := c.Get("user"); user != nil {
		if u, ok := user.(*model.User); ok {
			return u
		}
	}
	return nil
}

// objectID returns the decoded hashid route parameter.
func objectID(c *gin.Context) uint {
	return c.MustGet("object_id").(uint)
}
