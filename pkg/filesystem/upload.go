package filesystem

import (
	"context"
	"fmt"
	"io"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/google/uuid"
)

// FileData describes an incoming upload stream.
type FileData interface {
	io.Reader
	GetName() string
	GetSize() uint64
	GetMimeType() string
}

// generateBlobKey derives a fresh, never-reused object key. The key
// embeds the owner so bucket-level tooling can attribute blobs, and a
// UUID so copies of the same file never collide.
func (fs *FileSystem) generateBlobKey(fileName string) string {
	return fmt.Sprintf("files/%d/%s%s", fs.User.ID, uuid.New().String(), util.Ext(fileName))
}

// Upload validates an incoming file, streams it to the object store
// and records it inside folderID. A nil folderID targets the drive
// root.
func (fs *FileSystem) Upload(ctx context.Context, folderID *uint, file FileData) (*model.File, error) {
	name := file.GetName()
	if !fs.ValidateLegalName(name) {
		return nil, ErrIllegalObjectName
	}
	if !fs.ValidateExtension(name) {
		return nil, ErrFileExtensionNotAllowed
	}
	if !fs.ValidateFileSize(file.GetSize()) {
		return nil, ErrFileSizeTooBig
	}
	if !fs.ValidateCapacity(file.GetSize()) {
		return nil, ErrInsufficientCapacity
	}

	folder, err := fs.resolveParent(folderID)
	if err != nil {
		return nil, err
	}

	if model.FileNameExists(name, folderID, fs.User.ID, 0) {
		return nil, ErrNameConflict
	}

	key := fs.generateBlobKey(name)
	if err := fs.Handler.Put(ctx, file, key, file.GetSize()); err != nil {
		return nil, ErrObjectStore.WithError(err)
	}

	record := model.File{
		Name:         name,
		OriginalName: name,
		MimeType:     file.GetMimeType(),
		Size:         file.GetSize(),
		BlobKey:      key,
		BlobLocation: conf.StorageConfig.Bucket,
		UserID:       fs.User.ID,
		FolderID:     folderID,
		Path:         filePathIn(folder),
	}
	if _, err := record.Create(); err != nil {
		// The blob is already in the bucket; release it so the failed
		// upload does not leak storage.
		if failed, delErr := fs.Handler.Delete(ctx, []string{key}); delErr != nil || len(failed) > 0 {
			util.Log().Warning("Failed to release orphaned blob %q: %s", key, delErr)
		}
		return nil, ErrDBOperation.WithError(err)
	}

	fs.adjustStorage(int64(record.Size))
	return &record, nil
}
