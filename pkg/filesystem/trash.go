package filesystem

import (
	model "github.com/nimbusdrive/nimbus/models"
)

// SoftDeleteFolder moves a live folder and its whole live subtree into
// the trash. Parent references are left untouched so the forest shape
// survives and restore can work by flag alone. Returns the number of
// trashed objects.
func (fs *FileSystem) SoftDeleteFolder(id uint) (int, error) {
	folder, err := model.GetFolderByID(id, fs.User.ID)
	if err != nil {
		return 0, ErrObjectNotExist
	}

	folders, err := fs.subtreeFolders(&folder, false)
	if err != nil {
		return 0, err
	}
	ids := folderIDs(folders)

	files, err := model.GetFilesByFolderIDs(ids, fs.User.ID)
	if err != nil {
		return 0, ErrDBOperation.WithError(err)
	}

	if err := model.SoftDeleteFilesByIDs(fileIDs(files)); err != nil {
		return 0, ErrDBOperation.WithError(err)
	}
	if err := model.SoftDeleteFoldersByIDs(ids); err != nil {
		return 0, ErrDBOperation.WithError(err)
	}

	return len(folders) + len(files), nil
}

// SoftDeleteFile moves a single live file into the trash.
func (fs *FileSystem) SoftDeleteFile(id uint) error {
	file, err := model.GetFileByID(id, fs.User.ID)
	if err != nil {
		return ErrObjectNotExist
	}

	if err := model.SoftDeleteFilesByIDs([]uint{file.ID}); err != nil {
		return ErrDBOperation.WithError(err)
	}
	return nil
}

// RestoreFolder flips one trashed folder back to live. The restore is
// deliberately single-node: trashed descendants stay in the trash. A
// live sibling holding the same name blocks the restore.
func (fs *FileSystem) RestoreFolder(id uint) (*model.Folder, error) {
	folder, err := model.GetTrashedFolderByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	if model.FolderNameExists(folder.Name, folder.ParentID, fs.User.ID, folder.ID) {
		return nil, ErrNameConflict
	}

	if err := model.RestoreFolderByID(folder.ID); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	folder.DeletedAt = nil
	return &folder, nil
}

// RestoreFile flips one trashed file back to live.
func (fs *FileSystem) RestoreFile(id uint) (*model.File, error) {
	file, err := model.GetTrashedFileByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	if model.FileNameExists(file.Name, file.FolderID, fs.User.ID, file.ID) {
		return nil, ErrNameConflict
	}

	if err := model.RestoreFileByID(file.ID); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}

	file.DeletedAt = nil
	return &file, nil
}
