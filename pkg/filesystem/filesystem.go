package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/filesystem/driver"
	"github.com/nimbusdrive/nimbus/pkg/filesystem/driver/s3"

	"github.com/gin-gonic/gin"
)

// maxDepth caps every ancestor walk and subtree traversal. A chain
// longer than this is treated as corrupted rather than followed.
const maxDepth = 512

// FileSystem binds one user's slice of the tree to a blob store
// handler. All tree engines hang off this struct.
type FileSystem struct {
	User    *model.User
	Handler driver.Handler
}

// NewFileSystem returns a filesystem for the given user backed by the
// configured object store.
func NewFileSystem(user *model.User) (*FileSystem, error) {
	handler, err := s3.NewDriver()
	if err != nil {
		return nil, ErrObjectStore.WithError(err)
	}

	return &FileSystem{
		User:    user,
		Handler: handler,
	}, nil
}

// adjustStorage is the single reconciliation point for the owner's
// storage counter. Every engine that creates or releases a blob goes
// through here.
func (fs *FileSystem) adjustStorage(delta int64) {
	if delta >= 0 {
		fs.User.IncreaseStorageWithoutCheck(uint64(delta))
		return
	}
	fs.User.DeductionStorage(uint64(-delta))
}

// NewFileSystemFromContext builds a filesystem from the authenticated
// user stored on the gin context.
func NewFileSystemFromContext(c *gin.Context) (*FileSystem, error) {
	user, exist := c.Get("user")
	if !exist {
		return nil, ErrObjectNotExist
	}
	return NewFileSystem(user.(*model.User))
}
