package serializer

import (
	"testing"
	"time"

	model "github.com/nimbusdrive/nimbus/models"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
)

func TestBuildFolder(t *testing.T) {
	asserts := assert.New(t)
	parent := uint(2)

	folder := BuildFolder(model.Folder{
		Model:    gorm.Model{ID: 3},
		Name:     "sub",
		ParentID: &parent,
		Path:     "/docs/sub",
	})
	asserts.NotEmpty(folder.ID)
	asserts.NotEmpty(folder.ParentID)
	asserts.NotEqual(folder.ID, folder.ParentID)
	asserts.Equal("/docs/sub", folder.Path)

	// Root-level folder hides the parent field
	root := BuildFolder(model.Folder{Model: gorm.Model{ID: 2}, Name: "docs", Path: "/docs"})
	asserts.Empty(root.ParentID)
}

func TestBuildFile(t *testing.T) {
	asserts := assert.New(t)
	now := time.Now()
	folderID := uint(2)

	file := BuildFile(model.File{
		Model:     gorm.Model{ID: 9},
		Name:      "a.txt",
		Size:      100,
		FolderID:  &folderID,
		Path:      "/docs",
		IsStarred: true,
		StarredAt: &now,
	})
	asserts.NotEmpty(file.ID)
	asserts.Equal(uint64(100), file.Size)
	asserts.True(file.IsStarred)
	asserts.NotNil(file.StarredAt)
}

func TestBuildFolderList_Pagination(t *testing.T) {
	asserts := assert.New(t)

	res := BuildFolderList([]model.Folder{{Model: gorm.Model{ID: 1}}}, 101, 2, 50)
	list := res.Data.(FolderList)
	asserts.Len(list.Folders, 1)
	asserts.Equal(2, list.Pagination.Current)
	asserts.Equal(3, list.Pagination.Pages)
	asserts.Equal(101, list.Pagination.Total)
}

func TestBuildFolderContents(t *testing.T) {
	asserts := assert.New(t)

	res := BuildFolderContents(
		model.Folder{Model: gorm.Model{ID: 2}, Name: "docs"},
		[]model.Folder{{Model: gorm.Model{ID: 3}, Name: "sub"}},
		[]model.File{{Model: gorm.Model{ID: 9}, Name: "a.txt"}},
	)
	contents := res.Data.(FolderContents)
	asserts.Equal("docs", contents.Folder.Name)
	asserts.Len(contents.Folders, 1)
	asserts.Len(contents.Files, 1)
}
