package serializer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorAndWithError(t *testing.T) {
	asserts := assert.New(t)

	appErr := NewError(CodeNotFound, "Object not found", nil)
	asserts.Equal("Object not found", appErr.Error())
	asserts.Nil(appErr.RawError)

	raw := errors.New("record not found")
	wrapped := appErr.WithError(raw)
	asserts.Equal(raw, wrapped.RawError)
	// The original sentinel keeps its nil raw error
	asserts.Nil(appErr.RawError)
}

func TestErr_ExtractsAppError(t *testing.T) {
	asserts := assert.New(t)

	appErr := NewError(CodeObjectExist, "Object with the same name exists", errors.New("dup"))
	res := Err(CodeNotSet, "fallback", appErr)
	asserts.Equal(CodeObjectExist, res.Code)
	asserts.Equal("Object with the same name exists", res.Msg)

	res = Err(CodeDBError, "Database operation failed", errors.New("boom"))
	asserts.Equal(CodeDBError, res.Code)
	asserts.Equal("Database operation failed", res.Msg)
}

func TestDBErrAndParamErr(t *testing.T) {
	asserts := assert.New(t)

	asserts.Equal(CodeDBError, DBErr("", nil).Code)
	asserts.Equal("Database operation failed", DBErr("", nil).Msg)
	asserts.Equal(CodeParamErr, ParamErr("", nil).Code)
	asserts.Equal("custom", ParamErr("custom", nil).Msg)
}
