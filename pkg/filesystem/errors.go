package filesystem

import (
	"github.com/nimbusdrive/nimbus/pkg/serializer"
)

var (
	// ErrObjectNotExist requested object is missing, owned by someone
	// else, or in the wrong trash state. All three collapse into the
	// same error so existence cannot be probed.
	ErrObjectNotExist = serializer.NewError(serializer.CodeNotFound, "Object not found", nil)
	// ErrParentNotExist target parent folder does not exist
	ErrParentNotExist = serializer.NewError(serializer.CodeParentNotExist, "Parent folder not found", nil)
	// ErrNameConflict a live sibling already uses the name
	ErrNameConflict = serializer.NewError(serializer.CodeObjectExist, "Object with the same name exists", nil)
	// ErrIllegalMove moving a folder into itself or its own subtree
	ErrIllegalMove = serializer.NewError(serializer.CodeInvalidOperation, "Cannot move a folder into its own subtree", nil)
	// ErrIllegalObjectName name is empty or contains reserved characters
	ErrIllegalObjectName = serializer.NewError(serializer.CodeParamErr, "Invalid object name", nil)
	// ErrBrokenChain ancestor chain could not be walked to the root
	ErrBrokenChain = serializer.NewError(serializer.CodeIntegrityError, "Folder hierarchy is corrupted", nil)
	// ErrInsufficientCapacity storage quota exceeded
	ErrInsufficientCapacity = serializer.NewError(serializer.CodeInsufficientCapacity, "Insufficient storage capacity", nil)
	// ErrFileSizeTooBig file exceeds the configured size limit
	ErrFileSizeTooBig = serializer.NewError(serializer.CodeFileTooLarge, "File is too large", nil)
	// ErrFileExtensionNotAllowed blocked file extension
	ErrFileExtensionNotAllowed = serializer.NewError(serializer.CodeFileTypeNotAllowed, "File type not allowed", nil)
	// ErrDBOperation metadata write failed
	ErrDBOperation = serializer.NewError(serializer.CodeDBError, "Database operation failed", nil)
	// ErrObjectStore blob store call failed
	ErrObjectStore = serializer.NewError(serializer.CodeDependencyFailure, "Object storage operation failed", nil)
)
