package filesystem

import (
	"context"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/util"
)

// PurgeFolder permanently removes a trashed folder and its trashed
// subtree. Folders are purged deepest-first; within each folder the
// files go first: blob release, quota decrement, then the record.
// Purging a live folder is rejected as not found. Returns the number
// of purged objects.
func (fs *FileSystem) PurgeFolder(ctx context.Context, id uint) (int, error) {
	folder, err := model.GetTrashedFolderByID(id, fs.User.ID)
	if err != nil {
		return 0, ErrObjectNotExist
	}

	folders, err := fs.subtreeFolders(&folder, true)
	if err != nil {
		return 0, err
	}

	affected := 0
	for i := len(folders) - 1; i >= 0; i-- {
		files, err := model.GetTrashedFilesByFolderIDs([]uint{folders[i].ID}, fs.User.ID)
		if err != nil {
			return affected, ErrDBOperation.WithError(err)
		}

		if err := fs.purgeFiles(ctx, files); err != nil {
			return affected, err
		}
		affected += len(files)

		if err := model.DeleteFoldersByIDs([]uint{folders[i].ID}); err != nil {
			return affected, ErrDBOperation.WithError(err)
		}
		affected++
	}

	return affected, nil
}

// PurgeFile permanently removes a single trashed file.
func (fs *FileSystem) PurgeFile(ctx context.Context, id uint) error {
	file, err := model.GetTrashedFileByID(id, fs.User.ID)
	if err != nil {
		return ErrObjectNotExist
	}
	return fs.purgeFiles(ctx, []model.File{file})
}

// purgeFiles releases the blobs of the given files, reconciles the
// owner's quota and deletes the records. Blob release is best-effort:
// a failed or already-absent blob is logged and never blocks the
// purge, so the operation stays idempotent.
func (fs *FileSystem) purgeFiles(ctx context.Context, files []model.File) error {
	if len(files) == 0 {
		return nil
	}

	keys := make([]string, 0, len(files))
	for _, file := range files {
		keys = append(keys, file.BlobKey)
	}

	if failed, err := fs.Handler.Delete(ctx, keys); err != nil {
		util.Log().Warning("Failed to release blobs %v: %s", failed, err)
	} else if len(failed) > 0 {
		util.Log().Warning("Blobs %v were not released, continuing purge", failed)
	}

	for _, file := range files {
		fs.adjustStorage(-int64(file.Size))
	}

	if err := model.DeleteFilesByIDs(fileIDs(files)); err != nil {
		return ErrDBOperation.WithError(err)
	}
	return nil
}
