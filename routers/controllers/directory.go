package controllers

import (
	"github.com/nimbusdrive/nimbus/service/explorer"

	"github.com/gin-gonic/gin"
)

// CreateDirectory creates a new folder.
func CreateDirectory(c *gin.Context) {
	var service explorer.DirectoryCreateService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.Create(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListDirectory returns one folder with its direct children.
func ListDirectory(c *gin.Context) {
	res := explorer.Contents(c, objectID(c))
	c.JSON(200, res)
}

// ListFolders returns a page of folders under a parent.
func ListFolders(c *gin.Context) {
	var service explorer.ListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.Folders(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListStarredFolders returns a page of starred folders.
func ListStarredFolders(c *gin.Context) {
	var service explorer.ListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.StarredFolders(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListTrashedFolders returns a page of trashed folders.
func ListTrashedFolders(c *gin.Context) {
	var service explorer.ListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.TrashedFolders(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FolderBreadcrumb returns the ancestor chain of a folder.
func FolderBreadcrumb(c *gin.Context) {
	id := objectID(c)
	res := explorer.Breadcrumb(c, &id)
	c.JSON(200, res)
}

// RenameFolder renames a folder.
func RenameFolder(c *gin.Context) {
	var service explorer.ItemRenameService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.RenameFolder(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// MoveFolder re-parents a folder.
func MoveFolder(c *gin.Context) {
	var service explorer.ItemMoveService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.MoveFolder(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// StarFolder toggles the star flag on a folder.
func StarFolder(c *gin.Context) {
	var service explorer.ItemStarService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.StarFolder(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// CopyFolder duplicates a folder subtree.
func CopyFolder(c *gin.Context) {
	var service explorer.ItemCopyService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.CopyFolder(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// DeleteFolder trashes a folder subtree.
func DeleteFolder(c *gin.Context) {
	res := explorer.DeleteFolder(c, objectID(c))
	c.JSON(200, res)
}

// RestoreFolder restores a trashed folder.
func RestoreFolder(c *gin.Context) {
	res := explorer.RestoreFolder(c, objectID(c))
	c.JSON(200, res)
}

// PurgeFolder permanently removes a trashed folder subtree.
func PurgeFolder(c *gin.Context) {
	res := explorer.PurgeFolder(c, objectID(c))
	c.JSON(200, res)
}
