package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
)

// subtreeFolders collects the folders of the subtree rooted at root,
// level by level with root first. trashed selects whether trashed or
// live children are followed. The traversal is iterative with a work
// queue per level, so arbitrarily deep trees cannot exhaust the stack,
// and the level count is capped at maxDepth.
func (fs *FileSystem) subtreeFolders(root *model.Folder, trashed bool) ([]model.Folder, error) {
	all := []model.Folder{*root}
	parents := []uint{root.ID}

	for depth := 0; len(parents) > 0; depth++ {
		if depth >= maxDepth {
			return nil, ErrBrokenChain
		}

		var (
			children []model.Folder
			err      error
		)
		if trashed {
			children, err = model.GetTrashedFoldersByParentIDs(parents, fs.User.ID)
		} else {
			children, err = model.GetFoldersByParentIDs(parents, fs.User.ID)
		}
		if err != nil {
			return nil, ErrDBOperation.WithError(err)
		}

		parents = make([]uint, 0, len(children))
		for _, child := range children {
			all = append(all, child)
			parents = append(parents, child.ID)
		}
	}

	return all, nil
}

func folderIDs(folders []model.Folder) []uint {
	ids := make([]uint, 0, len(folders))
	for _, folder := range folders {
		ids = append(ids, folder.ID)
	}
	return ids
}

func fileIDs(files []model.File) []uint {
	ids := make([]uint, 0, len(files))
	for _, file := range files {
		ids = append(ids, file.ID)
	}
	return ids
}
