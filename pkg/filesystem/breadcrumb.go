package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/hashid"
	"github.com/nimbusdrive/nimbus/pkg/serializer"
)

// driveRootName labels the virtual root of every user's tree. It has
// no database row; breadcrumbs surface it with a null id.
const driveRootName = "My Drive"

// virtualRoot returns the breadcrumb entry of the drive root.
func virtualRoot() serializer.BreadcrumbItem {
	return serializer.BreadcrumbItem{
		ID:   nil,
		Name: driveRootName,
		Path: "/",
	}
}

// Breadcrumb returns the ordered ancestor chain of a live folder,
// starting at the virtual drive root and ending at the folder itself.
// A nil id yields just the root entry.
func (fs *FileSystem) Breadcrumb(id *uint) ([]serializer.BreadcrumbItem, error) {
	items := []serializer.BreadcrumbItem{virtualRoot()}
	if id == nil {
		return items, nil
	}

	folder, err := model.GetFolderByID(*id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	chain := []model.Folder{folder}
	current := &folder
	for depth := 0; current.ParentID != nil; depth++ {
		if depth >= maxDepth {
			return nil, ErrBrokenChain
		}
		parent, err := fs.folderParent(current)
		if err != nil {
			return nil, err
		}
		chain = append(chain, *parent)
		current = parent
	}

	for i := len(chain) - 1; i >= 0; i-- {
		encoded := hashid.HashID(chain[i].ID, hashid.FolderID)
		items = append(items, serializer.BreadcrumbItem{
			ID:   &encoded,
			Name: chain[i].Name,
			Path: chain[i].Path,
		})
	}

	return items, nil
}
