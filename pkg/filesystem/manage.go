package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
)

// CreateFolder makes a new live folder under parentID. A nil parentID
// targets the drive root.
func (fs *FileSystem) CreateFolder(parentID *uint, name string) (*model.Folder, error) {
	if !fs.ValidateLegalName(name) {
		return nil, ErrIllegalObjectName
	}

	parent, err := fs.resolveParent(parentID)
	if err != nil {
		return nil, err
	}

	if model.FolderNameExists(name, parentID, fs.User.ID, 0) {
		return nil, ErrNameConflict
	}

	folder := model.Folder{
		Name:     name,
		ParentID: parentID,
		OwnerID:  fs.User.ID,
		Path:     folderPathUnder(parent, name),
	}
	if _, err := folder.Create(); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	return &folder, nil
}

// RenameFolder renames a live folder and rewrites the cached paths of
// its whole subtree.
func (fs *FileSystem) RenameFolder(id uint, newName string) (*model.Folder, error) {
	if !fs.ValidateLegalName(newName) {
		return nil, ErrIllegalObjectName
	}

	folder, err := model.GetFolderByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	if model.FolderNameExists(newName, folder.ParentID, fs.User.ID, folder.ID) {
		return nil, ErrNameConflict
	}

	parent, err := fs.folderParent(&folder)
	if err != nil {
		return nil, err
	}

	folder.Name = newName
	folder.Path = folderPathUnder(parent, newName)
	if err := folder.Update(map[string]interface{}{
		"name": folder.Name,
		"path": folder.Path,
	}); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	if err := fs.cascadePaths(&folder); err != nil {
		return nil, err
	}

	return &folder, nil
}

// RenameFile renames a live file. File paths cache the containing
// folder's path, so no cascade is needed.
func (fs *FileSystem) RenameFile(id uint, newName string) (*model.File, error) {
	if !fs.ValidateLegalName(newName) {
		return nil, ErrIllegalObjectName
	}

	file, err := model.GetFileByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	if model.FileNameExists(newName, file.FolderID, fs.User.ID, file.ID) {
		return nil, ErrNameConflict
	}

	file.Name = newName
	if err := file.Update(map[string]interface{}{"name": newName}); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	return &file, nil
}

// MoveFolder re-parents a live folder. Moving a folder into itself or
// into its own subtree is rejected before anything is written.
func (fs *FileSystem) MoveFolder(id uint, newParentID *uint) (*model.Folder, error) {
	folder, err := model.GetFolderByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	parent, err := fs.resolveParent(newParentID)
	if err != nil {
		return nil, err
	}

	if parent != nil {
		inSubtree, err := fs.isDescendantOf(parent, folder.ID)
		if err != nil {
			return nil, err
		}
		if inSubtree {
			return nil, ErrIllegalMove
		}
	}

	if model.FolderNameExists(folder.Name, newParentID, fs.User.ID, folder.ID) {
		return nil, ErrNameConflict
	}

	folder.ParentID = newParentID
	folder.Path = folderPathUnder(parent, folder.Name)
	if err := folder.Update(map[string]interface{}{
		"parent_id": newParentID,
		"path":      folder.Path,
	}); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	if err := fs.cascadePaths(&folder); err != nil {
		return nil, err
	}

	return &folder, nil
}

// MoveFile moves a live file into another folder. A nil folder id
// targets the drive root.
func (fs *FileSystem) MoveFile(id uint, newFolderID *uint) (*model.File, error) {
	file, err := model.GetFileByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	folder, err := fs.resolveParent(newFolderID)
	if err != nil {
		return nil, err
	}

	if model.FileNameExists(file.Name, newFolderID, fs.User.ID, file.ID) {
		return nil, ErrNameConflict
	}

	file.FolderID = newFolderID
	file.Path = filePathIn(folder)
	if err := file.Update(map[string]interface{}{
		"folder_id": newFolderID,
		"path":      file.Path,
	}); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	return &file, nil
}
