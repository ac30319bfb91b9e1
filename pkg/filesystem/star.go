package filesystem

import (
	"time"

	model "github.com/nimbusdrive/nimbus/models"
)

// StarFolder sets or clears the star flag on a live folder.
func (fs *FileSystem) StarFolder(id uint, starred bool) (*model.Folder, error) {
	folder, err := model.GetFolderByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	folder.IsStarred = starred
	folder.StarredAt = starTime(starred)
	if err := folder.Update(map[string]interface{}{
		"is_starred": folder.IsStarred,
		"starred_at": folder.StarredAt,
	}); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}
	return &folder, nil
}

// StarFile sets or clears the star flag on a live file.
func (fs *FileSystem) StarFile(id uint, starred bool) (*model.File, error) {
	file, err := model.GetFileByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	file.IsStarred = starred
	file.StarredAt = starTime(starred)
	if err := file.Update(map[string]interface{}{
		"is_starred": file.IsStarred,
		"starred_at": file.StarredAt,
	}); err != nil {
		return nil, ErrDBOperation.WithError(err)
	}
	return &file, nil
}

func starTime(starred bool) *time.Time {
	if !starred {
		return nil
	}
	now := time.Now()
	return &now
}
