package serializer

import (
	"github.com/gin-gonic/gin"
)

// AppError application error carrying a business code, implements error.
type AppError struct {
	Code     int
	Msg      string
	RawError error
}

// NewError returns a new AppError.
func NewError(code int, msg string, err error) AppError {
	return AppError{
		Code:     code,
		Msg:      msg,
		RawError: err,
	}
}

// WithError attaches an underlying error to a copy of the AppError.
func (err AppError) WithError(raw error) AppError {
	err.RawError = raw
	return err
}

// Error returns the human-readable message of the error.
func (err AppError) Error() string {
	return err.Msg
}

// Three-digit codes reuse their HTTP meaning.
// Five-digit codes starting with 4 are client-side failures, with 5
// server-side ones.
const (
	// CodeCheckLogin login required
	CodeCheckLogin = 401
	// CodeNoPermissionErr permission denied
	CodeNoPermissionErr = 403
	// CodeNotFound object not found; also covers wrong owner and wrong
	// trash state so existence cannot be probed across accounts
	CodeNotFound = 404
	// CodeParamErr malformed request parameters
	CodeParamErr = 40001
	// CodeUploadFailed upload could not be completed
	CodeUploadFailed = 40002
	// CodeObjectExist a live sibling with the same name already exists
	CodeObjectExist = 40004
	// CodeParentNotExist target parent folder does not exist
	CodeParentNotExist = 40008
	// CodeInvalidOperation structurally illegal request, e.g. moving a
	// folder into its own subtree
	CodeInvalidOperation = 40012
	// CodeInsufficientCapacity storage quota exceeded
	CodeInsufficientCapacity = 40013
	// CodeFileTooLarge file exceeds the configured size limit
	CodeFileTooLarge = 40014
	// CodeFileTypeNotAllowed file extension is blocked
	CodeFileTypeNotAllowed = 40015
	// CodeDBError database operation failed
	CodeDBError = 50001
	// CodeIOFailed IO operation failed
	CodeIOFailed = 50004
	// CodeIntegrityError ancestor chain broken, prior data corruption
	CodeIntegrityError = 50008
	// CodeDependencyFailure object store call failed
	CodeDependencyFailure = 50009
	// CodeNotSet fallback code, resolved from the wrapped AppError
	CodeNotSet = -1
)

// DBErr database operation failure.
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "Database operation failed"
	}
	return Err(CodeDBError, msg, err)
}

// ParamErr parameter failure.
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "Invalid parameters"
	}
	return Err(CodeParamErr, msg, err)
}

// Err builds an error response. When err wraps an AppError, the code and
// message of the innermost AppError win.
func Err(errCode int, msg string, err error) Response {
	if appError, ok := err.(AppError); ok {
		errCode = appError.Code
		msg = appError.Msg
		err = appError.RawError
	}

	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// Hide the underlying error in production.
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = err.Error()
	}
	return res
}
