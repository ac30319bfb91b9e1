package serializer

import (
	"time"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/hashid"

	"github.com/samber/lo"
)

// Folder serialized folder object.
type Folder struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ParentID  string     `json:"parent_id,omitempty"`
	Path      string     `json:"path"`
	IsStarred bool       `json:"is_starred"`
	StarredAt *time.Time `json:"starred_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// File serialized file object.
type File struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Size      uint64     `json:"size"`
	MimeType  string     `json:"mime_type"`
	FolderID  string     `json:"folder_id,omitempty"`
	Path      string     `json:"path"`
	IsStarred bool       `json:"is_starred"`
	StarredAt *time.Time `json:"starred_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Pagination paging info attached to list responses.
type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

// FolderList paged folder listing.
type FolderList struct {
	Folders    []Folder   `json:"folders"`
	Pagination Pagination `json:"pagination"`
}

// FileList paged file listing.
type FileList struct {
	Files      []File     `json:"files"`
	Pagination Pagination `json:"pagination"`
}

// FolderContents a folder together with its direct children.
type FolderContents struct {
	Folder  Folder   `json:"folder"`
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}

// BreadcrumbItem one entry of the ancestor chain. The virtual drive root
// is represented with a null ID.
type BreadcrumbItem struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
	Path string  `json:"path"`
}

// AffectedItems result of a subtree-wide mutation.
type AffectedItems struct {
	Affected int `json:"affected"`
}

// DownloadURL signed download descriptor.
type DownloadURL struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     uint64 `json:"size"`
	MimeType string `json:"mime_type"`
}

// BuildFolder serializes a folder model.
func BuildFolder(folder model.Folder) Folder {
	parent := ""
	if folder.ParentID != nil {
		parent = hashid.HashID(*folder.ParentID, hashid.FolderID)
	}

	return Folder{
		ID:        hashid.HashID(folder.ID, hashid.FolderID),
		Name:      folder.Name,
		ParentID:  parent,
		Path:      folder.Path,
		IsStarred: folder.IsStarred,
		StarredAt: folder.StarredAt,
		DeletedAt: folder.DeletedAt,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}

// BuildFile serializes a file model.
func BuildFile(file model.File) File {
	folderID := ""
	if file.FolderID != nil {
		folderID = hashid.HashID(*file.FolderID, hashid.FolderID)
	}

	return File{
		ID:        hashid.HashID(file.ID, hashid.FileID),
		Name:      file.Name,
		Size:      file.Size,
		MimeType:  file.MimeType,
		FolderID:  folderID,
		Path:      file.Path,
		IsStarred: file.IsStarred,
		StarredAt: file.StarredAt,
		DeletedAt: file.DeletedAt,
		CreatedAt: file.CreatedAt,
		UpdatedAt: file.UpdatedAt,
	}
}

// BuildFolderList serializes a paged folder listing.
func BuildFolderList(folders []model.Folder, total, page, limit int) Response {
	return Response{
		Data: FolderList{
			Folders:    lo.Map(folders, func(f model.Folder, _ int) Folder { return BuildFolder(f) }),
			Pagination: buildPagination(total, page, limit),
		},
	}
}

// BuildFileList serializes a paged file listing.
func BuildFileList(files []model.File, total, page, limit int) Response {
	return Response{
		Data: FileList{
			Files:      lo.Map(files, func(f model.File, _ int) File { return BuildFile(f) }),
			Pagination: buildPagination(total, page, limit),
		},
	}
}

// BuildFolderContents serializes a folder detail view.
func BuildFolderContents(folder model.Folder, folders []model.Folder, files []model.File) Response {
	return Response{
		Data: FolderContents{
			Folder:  BuildFolder(folder),
			Folders: lo.Map(folders, func(f model.Folder, _ int) Folder { return BuildFolder(f) }),
			Files:   lo.Map(files, func(f model.File, _ int) File { return BuildFile(f) }),
		},
	}
}

func buildPagination(total, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
	}
}
