package filesystem

import (
	"context"

	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/serializer"
)

// GetDownloadURL returns a signed, short-lived URL for a live file.
func (fs *FileSystem) GetDownloadURL(ctx context.Context, id uint) (*serializer.DownloadURL, error) {
	file, err := model.GetFileByID(id, fs.User.ID)
	if err != nil {
		return nil, ErrObjectNotExist
	}

	signedURL, err := fs.Handler.Source(ctx, file.BlobKey, file.Name, conf.StorageConfig.SignedURLExpire)
	if err != nil {
		return nil, ErrObjectStore.WithError(err)
	}

	return &serializer.DownloadURL{
		URL:      signedURL,
		Name:     file.Name,
		Size:     file.Size,
		MimeType: file.MimeType,
	}, nil
}
