package explorer

import (
	"context"

	"github.com/nimbusdrive/nimbus/pkg/filesystem"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// ItemRenameService renames a folder or file.
type ItemRenameService struct {
	NewName string `json:"new_name" binding:"required,min=1,max=255"`
}

// ItemMoveService moves a folder or file under a new parent. An empty
// parent id targets the drive root.
type ItemMoveService struct {
	ParentID string `json:"parent_id"`
}

// ItemStarService sets or clears the star flag.
type ItemStarService struct {
	Starred *bool `json:"starred" binding:"required"`
}

// ItemCopyService copies a folder subtree or a single file.
type ItemCopyService struct {
	ParentID string `json:"parent_id"`
	NewName  string `json:"new_name" binding:"omitempty,min=1,max=255"`
}

// RenameFolder renames the folder and cascades paths to its subtree.
func (service *ItemRenameService) RenameFolder(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	folder, err := fs.RenameFolder(id, service.NewName)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFolder(*folder))
}

// RenameFile renames the file.
func (service *ItemRenameService) RenameFile(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	file, err := fs.RenameFile(id, service.NewName)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFile(*file))
}

// MoveFolder re-parents the folder.
func (service *ItemMoveService) MoveFolder(c *gin.Context, id uint) serializer.Response {
	parentID, err := decodeOptionalFolderID(service.ParentID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	folder, err := fs.MoveFolder(id, parentID)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFolder(*folder))
}

// MoveFile moves the file into another folder.
func (service *ItemMoveService) MoveFile(c *gin.Context, id uint) serializer.Response {
	folderID, err := decodeOptionalFolderID(service.ParentID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	file, err := fs.MoveFile(id, folderID)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFile(*file))
}

// StarFolder toggles the star flag on the folder.
func (service *ItemStarService) StarFolder(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	folder, err := fs.StarFolder(id, *service.Starred)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFolder(*folder))
}

// StarFile toggles the star flag on the file.
func (service *ItemStarService) StarFile(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	file, err := fs.StarFile(id, *service.Starred)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFile(*file))
}

// CopyFolder duplicates a folder subtree into the requested parent.
func (service *ItemCopyService) CopyFolder(c *gin.Context, id uint) serializer.Response {
	parentID, err := decodeOptionalFolderID(service.ParentID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	folder, err := fs.CopyFolder(c.Request.Context(), id, parentID, service.NewName)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFolder(*folder))
}

// CopyFile duplicates a single file into the requested folder.
func (service *ItemCopyService) CopyFile(c *gin.Context, id uint) serializer.Response {
	folderID, err := decodeOptionalFolderID(service.ParentID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	file, err := fs.CopyFile(c.Request.Context(), id, folderID, service.NewName)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFile(*file))
}

// DeleteFolder trashes a folder subtree and reports how many objects
// were affected.
func DeleteFolder(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	affected, err := fs.SoftDeleteFolder(id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.AffectedItems{Affected: affected})
}

// DeleteFile trashes a single file.
func DeleteFile(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	if err := fs.SoftDeleteFile(id); err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.AffectedItems{Affected: 1})
}

// RestoreFolder flips a trashed folder back to live without touching
// its descendants.
func RestoreFolder(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	folder, err := fs.RestoreFolder(id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFolder(*folder))
}

// RestoreFile flips a trashed file back to live.
func RestoreFile(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	file, err := fs.RestoreFile(id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.BuildFile(*file))
}

// PurgeFolder permanently removes a trashed folder subtree.
func PurgeFolder(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	affected, err := fs.PurgeFolder(ctx, id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.AffectedItems{Affected: affected})
}

// PurgeFile permanently removes a single trashed file.
func PurgeFile(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := fs.PurgeFile(ctx, id); err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(serializer.AffectedItems{Affected: 1})
}
