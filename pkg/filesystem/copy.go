package filesystem

import (
	"context"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/util"
)

// defaultCopyName labels a copy when the caller does not name it.
func defaultCopyName(name string) string {
	return "Copy of " + name
}

// CopyFolder duplicates a live folder subtree under targetParentID.
// Every copied node gets a fresh identity and a fresh blob key, nothing
// is shared with the source. A file whose blob cannot be duplicated is
// logged and skipped; the rest of the copy proceeds.
func (fs *FileSystem) CopyFolder(ctx context.Context, id uint, targetParentID *uint, newName string) (*model.Folder, error) {
	src, err := model.GetFolderByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	target, err := fs.resolveParent(targetParentID)
	if err != nil {
		return nil, err
	}

	if newName == "" {
		newName = defaultCopyName(src.Name)
	}
	if !fs.ValidateLegalName(newName) {
		return nil, ErrIllegalObjectName
	}

	// Snapshot the source subtree before creating anything, so a copy
	// landing inside its own source cannot be re-discovered and
	// traversed again.
	folders, err := fs.subtreeFolders(&src, false)
	if err != nil {
		return nil, err
	}

	copyOf := make(map[uint]*model.Folder, len(folders))
	for _, source := range folders {
		var (
			parent *model.Folder
			name   = source.Name
		)
		if source.ID == src.ID {
			parent = target
			name = newName
		} else {
			parent = copyOf[*source.ParentID]
		}

		parentID := (*uint)(nil)
		if parent != nil {
			parentID = &parent.ID
		}

		dup := model.Folder{
			Name:     name,
			ParentID: parentID,
			OwnerID:  fs.User.ID,
			Path:     folderPathUnder(parent, name),
		}
		if _, err := dup.Create(); err != nil {
			return nil, ErrDBOperation.WithError(err)
		}
		copyOf[source.ID] = &dup

		files, err := model.GetFilesByFolderIDs([]uint{source.ID}, fs.User.ID)
		if err != nil {
			return nil, ErrDBOperation.WithError(err)
		}
		for _, file := range files {
			if err := fs.copyFileInto(ctx, file, &dup, file.Name); err != nil {
				util.Log().Warning("Failed to copy file %q into folder %d, skipping: %s", file.Name, dup.ID, err)
			}
		}
	}

	return copyOf[src.ID], nil
}

// CopyFile duplicates a single live file into targetFolderID. Unlike
// the subtree copy there is nothing to salvage here, so a blob failure
// fails the operation.
func (fs *FileSystem) CopyFile(ctx context.Context, id uint, targetFolderID *uint, newName string) (*model.File, error) {
	src, err := model.GetFileByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	target, err := fs.resolveParent(targetFolderID)
	if err != nil {
		return nil, err
	}

	if newName == "" {
		newName = defaultCopyName(src.Name)
	}
	if !fs.ValidateLegalName(newName) {
		return nil, ErrIllegalObjectName
	}

	dup := src
	if err := fs.duplicateBlobAndRecord(ctx, &dup, target, newName); err != nil {
		return nil, err
	}
	return &dup, nil
}

// copyFileInto duplicates one file into an already-created destination
// folder.
func (fs *FileSystem) copyFileInto(ctx context.Context, src model.File, dst *model.Folder, name string) error {
	return fs.duplicateBlobAndRecord(ctx, &src, dst, name)
}

// duplicateBlobAndRecord clones the blob of *file under a fresh key,
// then rewrites *file into a new record inside dst and reconciles the
// owner's quota.
func (fs *FileSystem) duplicateBlobAndRecord(ctx context.Context, file *model.File, dst *model.Folder, name string) error {
	newKey := fs.generateBlobKey(name)
	if err := fs.Handler.Copy(ctx, file.BlobKey, newKey); err != nil {
		return ErrObjectStore.WithError(err)
	}

	folderID := (*uint)(nil)
	if dst != nil {
		folderID = &dst.ID
	}

	dup := model.File{
		Name:         name,
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
		Size:         file.Size,
		BlobKey:      newKey,
		BlobLocation: file.BlobLocation,
		UserID:       fs.User.ID,
		FolderID:     folderID,
		Path:         filePathIn(dst),
	}
	if _, err := dup.Create(); err != nil {
		return ErrDBOperation.WithError(err)
	}

	fs.adjustStorage(int64(dup.Size))
	*file = dup
	return nil
}
