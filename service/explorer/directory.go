package explorer

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/filesystem"
	"github.com/nimbusdrive/nimbus/pkg/hashid"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// DirectoryCreateService creates a new folder.
type DirectoryCreateService struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	ParentID string `json:"parent_id"`
}

// ListService paged listing parameters shared by every listing route.
type ListService struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=50" binding:"min=1,max=200"`
	Keyword  string `form:"keyword"`
	ParentID string `form:"parent_id"`
	FolderID string `form:"folder_id"`
}

// decodeOptionalFolderID turns an optional hashid into a folder primary
// key. An empty value addresses the drive root.
func decodeOptionalFolderID(id string) (*uint, error) {
	if id == "" {
		return nil, nil
	}
	raw, err := hashid.DecodeHashID(id, hashid.FolderID)
	if err != nil {
		return nil, err
	}
	return &raw, nil
}

// currentUser pulls the authenticated user off the gin context.
func currentUser(c *gin.Context) *model.User {
	user, _ := c.Get("user")
	return user.(*model.User)
}

// Create makes a new folder under the requested parent.
func (service *DirectoryCreateService) Create(c *gin.Context) serializer.Response {
	parentID, err := decodeOptionalFolderID(service.ParentID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	folder, err := fs.CreateFolder(parentID, service.Name)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	return serializer.NewResponseWithData(serializer.BuildFolder(*folder))
}

// Folders lists live folders under the requested parent.
func (service *ListService) Folders(c *gin.Context) serializer.Response {
	parentID, err := decodeOptionalFolderID(service.ParentID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	user := currentUser(c)
	folders, total, err := model.ListFolders(user.ID, parentID, service.Keyword, service.Page, service.PageSize)
	if err != nil {
		return serializer.DBErr("", err)
	}
	return serializer.BuildFolderList(folders, total, service.Page, service.PageSize)
}

// Files lists live files under the requested folder.
func (service *ListService) Files(c *gin.Context) serializer.Response {
	folderID, err := decodeOptionalFolderID(service.FolderID)
	if err != nil {
		return serializer.ParamErr("Failed to parse folder ID", err)
	}

	user := currentUser(c)
	files, total, err := model.ListFiles(user.ID, folderID, service.Keyword, service.Page, service.PageSize)
	if err != nil {
		return serializer.DBErr("", err)
	}
	return serializer.BuildFileList(files, total, service.Page, service.PageSize)
}

// StarredFolders lists starred live folders.
func (service *ListService) StarredFolders(c *gin.Context) serializer.Response {
	user := currentUser(c)
	folders, total, err := model.ListStarredFolders(user.ID, service.Keyword, service.Page, service.PageSize)
	if err != nil {
		return serializer.DBErr("", err)
	}
	return serializer.BuildFolderList(folders, total, service.Page, service.PageSize)
}

// StarredFiles lists starred live files.
func (service *ListService) StarredFiles(c *gin.Context) serializer.Response {
	user := currentUser(c)
	files, total, err := model.ListStarredFiles(user.ID, service.Keyword, service.Page, service.PageSize)
	if err != nil {
		return serializer.DBErr("", err)
	}
	return serializer.BuildFileList(files, total, service.Page, service.PageSize)
}

// TrashedFolders lists folders currently in the trash.
func (service *ListService) TrashedFolders(c *gin.Context) serializer.Response {
	user := currentUser(c)
	folders, total, err := model.ListTrashedFolders(user.ID, service.Keyword, service.Page, service.PageSize)
	if err != nil {
		return serializer.DBErr("", err)
	}
	return serializer.BuildFolderList(folders, total, service.Page, service.PageSize)
}

// TrashedFiles lists files currently in the trash.
func (service *ListService) TrashedFiles(c *gin.Context) serializer.Response {
	user := currentUser(c)
	files, total, err := model.ListTrashedFiles(user.ID, service.Keyword, service.Page, service.PageSize)
	if err != nil {
		return serializer.DBErr("", err)
	}
	return serializer.BuildFileList(files, total, service.Page, service.PageSize)
}

// Contents returns one folder together with its direct live children.
// The folder id comes from the route parameter.
func Contents(c *gin.Context, id uint) serializer.Response {
	user := currentUser(c)

	folder, err := model.GetFolderByID(id, user.ID)
	if err != nil {
		return serializer.Err(serializer.CodeNotFound, "Object not found", err)
	}

	folders, err := model.GetFoldersByParentIDs([]uint{folder.ID}, user.ID)
	if err != nil {
		return serializer.DBErr("", err)
	}
	files, err := model.GetFilesByFolderIDs([]uint{folder.ID}, user.ID)
	if err != nil {
		return serializer.DBErr("", err)
	}

	return serializer.BuildFolderContents(folder, folders, files)
}

// Breadcrumb returns the ancestor chain of a folder, virtual drive
// root included. A nil id addresses the root itself.
func Breadcrumb(c *gin.Context, id *uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	items, err := fs.Breadcrumb(id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(items)
}
