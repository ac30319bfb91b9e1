package explorer

import (
	"io"

	"github.com/nimbusdrive/nimbus/pkg/filesystem"
	"github.com/nimbusdrive/nimbus/pkg/serializer"

	"github.com/gin-gonic/gin"
)

// UploadService receives one multipart file upload.
type UploadService struct {
	FolderID string `form:"folder_id"`
}

// uploadedFile adapts a multipart part to the filesystem upload
// contract.
type uploadedFile struct {
	io.Reader
	name     string
	size     uint64
	mimeType string
}

func (file *uploadedFile) GetName() string     { return file.name }
func (file *uploadedFile) GetSize() uint64     { return file.size }
func (file *uploadedFile) GetMimeType() string { return file.mimeType }

// Upload stores the uploaded file inside the requested folder.
func (service *UploadService) Upload(c *gin.Context) serializer.Response {
	folderID, err := decodeOptionalFolderID(service.FolderID)
	if err != nil {
		return serializer.ParamErr("Failed to parse parent folder ID", err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return serializer.ParamErr("Missing file field", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return serializer.Err(serializer.CodeIOFailed, "Failed to read upload", err)
	}
	defer src.Close()

	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	file, err := fs.Upload(c.Request.Context(), folderID, &uploadedFile{
		Reader:   src,
		name:     fileHeader.Filename,
		size:     uint64(fileHeader.Size),
		mimeType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return serializer.Err(serializer.CodeUploadFailed, err.Error(), err)
	}

	return serializer.NewResponseWithData(serializer.BuildFile(*file))
}

// Download returns a signed download URL for a live file.
func Download(c *gin.Context, id uint) serializer.Response {
	fs, err := filesystem.NewFileSystemFromContext(c)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}

	url, err := fs.GetDownloadURL(c.Request.Context(), id)
	if err != nil {
		return serializer.Err(serializer.CodeNotSet, err.Error(), err)
	}
	return serializer.NewResponseWithData(url)
}
