package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
)

// isDescendantOf reports whether candidate sits inside the subtree
// rooted at folderID, folderID itself included. The check walks the
// parent chain upwards so it touches at most one row per level.
func (fs *FileSystem) isDescendantOf(candidate *model.Folder, folderID uint) (bool, error) {
	current := candidate
	for depth := 0; current != nil; depth++ {
		if depth >= maxDepth {
			return false, ErrBrokenChain
		}
		if current.ID == folderID {
			return true, nil
		}
		if current.ParentID == nil {
			return false, nil
		}

		parent, err := model.GetFolderByIDUnscoped(*current.ParentID, fs.User.ID)
		if err != nil {
			return false, ErrBrokenChain.WithError(err)
		}
		current = &parent
	}
	return false, nil
}
