package controllers

import (
	"github.com/nimbusdrive/nimbus/service/explorer"

	"github.com/gin-gonic/gin"
)

// FileUpload receives a multipart upload.
func FileUpload(c *gin.Context) {
	var service explorer.UploadService
	if err := c.ShouldBind(&service); err == nil {
		res := service.Upload(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// FileDownload returns a signed download URL.
func FileDownload(c *gin.Context) {
	res := explorer.Download(c, objectID(c))
	c.JSON(200, res)
}

// ListFiles returns a page of files under a folder.
func ListFiles(c *gin.Context) {
	var service explorer.ListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.Files(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListStarredFiles returns a page of starred files.
func ListStarredFiles(c *gin.Context) {
	var service explorer.ListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.StarredFiles(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// ListTrashedFiles returns a page of trashed files.
func ListTrashedFiles(c *gin.Context) {
	var service explorer.ListService
	if err := c.ShouldBindQuery(&service); err == nil {
		res := service.TrashedFiles(c)
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// RenameFile renames a file.
func RenameFile(c *gin.Context) {
	var service explorer.ItemRenameService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.RenameFile(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// MoveFile moves a file into another folder.
func MoveFile(c *gin.Context) {
	var service explorer.ItemMoveService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.MoveFile(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// StarFile toggles the star flag on a file.
func StarFile(c *gin.Context) {
	var service explorer.ItemStarService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.StarFile(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// CopyFile duplicates a single file.
func CopyFile(c *gin.Context) {
	var service explorer.ItemCopyService
	if err := c.ShouldBindJSON(&service); err == nil {
		res := service.CopyFile(c, objectID(c))
		c.JSON(200, res)
	} else {
		c.JSON(200, ErrorResponse(err))
	}
}

// DeleteFile trashes a single file.
func DeleteFile(c *gin.Context) {
	res := explorer.DeleteFile(c, objectID(c))
	c.JSON(200, res)
}

// RestoreFile restores a trashed file.
func RestoreFile(c *gin.Context) {
	res := explorer.RestoreFile(c, objectID(c))
	c.JSON(200, res)
}

// PurgeFile permanently removes a trashed file.
func PurgeFile(c *gin.Context) {
	res := explorer.PurgeFile(c, objectID(c))
	c.JSON(200, res)
}
