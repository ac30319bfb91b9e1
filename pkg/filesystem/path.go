package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
)

// folderPathUnder computes the materialized path a folder named name
// would carry under parent. A nil parent is the drive root.
func folderPathUnder(parent *model.Folder, name string) string {
	if parent == nil {
		return "/" + name
	}
	return parent.Path + "/" + name
}

// filePathIn returns the cached path a file carries inside folder. A
// nil folder is the drive root.
func filePathIn(folder *model.Folder) string {
	if folder == nil {
		return "/"
	}
	return folder.Path
}

// resolveParent loads the target parent folder and checks that it is a
// live folder of the current user. A nil id resolves to the drive root.
func (fs *FileSystem) resolveParent(parentID *uint) (*model.Folder, error) {
	if parentID == nil {
		return nil, nil
	}
	parent, err := model.GetFolderByID(*parentID, fs.User.ID)
	if err != nil {
		return nil, ErrParentNotExist
	}
	return &parent, nil
}

// folderParent loads the direct parent of a folder regardless of trash
// state. A missing parent row means the chain is corrupted.
func (fs *FileSystem) folderParent(folder *model.Folder) (*model.Folder, error) {
	if folder.ParentID == nil {
		return nil, nil
	}
	parent, err := model.GetFolderByIDUnscoped(*folder.ParentID, fs.User.ID)
	if err != nil {
		return nil, ErrBrokenChain.WithError(err)
	}
	return &parent, nil
}

// cascadePaths rewrites the cached paths of every descendant after
// folder.Path changed. The walk is a level-order traversal over the
// parent chain, so the subtree is visited in batches and the depth can
// be bounded.
func (fs *FileSystem) cascadePaths(folder *model.Folder) error {
	if err := model.UpdateFilePathsByFolderID(folder.ID, folder.Path); err != nil {
		return ErrDBOperation.WithError(err)
	}

	parents := []model.Folder{*folder}
	for depth := 0; len(parents) > 0; depth++ {
		if depth >= maxDepth {
			return ErrBrokenChain
		}

		ids := make([]uint, 0, len(parents))
		pathOf := make(map[uint]string, len(parents))
		for _, parent := range parents {
			ids = append(ids, parent.ID)
			pathOf[parent.ID] = parent.Path
		}

		children, err := model.GetFoldersByParentIDsUnscoped(ids, fs.User.ID)
		if err != nil {
			return ErrDBOperation.WithError(err)
		}

		next := make([]model.Folder, 0, len(children))
		for _, child := range children {
			child.Path = pathOf[*child.ParentID] + "/" + child.Name
			if err := model.UpdateFolderPathByID(child.ID, child.Path); err != nil {
				return ErrDBOperation.WithError(err)
			}
			if err := model.UpdateFilePathsByFolderID(child.ID, child.Path); err != nil {
				return ErrDBOperation.WithError(err)
			}
			next = append(next, child)
		}
		parents = next
	}

	return nil
}
