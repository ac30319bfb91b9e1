package model

import (
	"time"

	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/jinzhu/gorm"
)

// File regular node of the tree. BlobKey references the backing blob in
// the object store; Path caches the materialized path of the containing
// folder ("/" at root level). DeletedAt doubles as the trash flag, the
// same way it does for Folder.
type File struct {
	gorm.Model
	Name         string `gorm:"index:idx_file_name"`
	OriginalName string
	MimeType     string
	Size         uint64
	BlobKey      string `gorm:"index:idx_file_blob"`
	BlobLocation string
	UserID       uint  `gorm:"index:idx_file_user"`
	FolderID     *uint `gorm:"index:idx_file_folder"`
	Path         string `gorm:"size:65536"`
	IsStarred    bool
	StarredAt    *time.Time
}

// Create inserts the file record.
func (file *File) Create() (uint, error) {
	if err := DB.Create(file).Error; err != nil {
		util.Log().Warning("Failed to insert file record: %s", err)
		return 0, err
	}
	return file.ID, nil
}

// Update applies the given column values to the file record.
func (file *File) Update(val map[string]interface{}) error {
	return DB.Model(file).Updates(val).Error
}

// GetFileByID finds a live file owned by uid.
func GetFileByID(id uint, uid uint) (File, error) {
	var file File
	result := DB.Where("id = ? and user_id = ?", id, uid).First(&file)
	return file, result.Error
}

// GetTrashedFileByID finds a trashed file owned by uid.
func GetTrashedFileByID(id uint, uid uint) (File, error) {
	var file File
	result := DB.Unscoped().
		Where("id = ? and user_id = ? and deleted_at is not null", id, uid).
		First(&file)
	return file, result.Error
}

// GetFilesByFolderIDs finds all live files inside the given folders.
func GetFilesByFolderIDs(ids []uint, uid uint) ([]File, error) {
	var files []File
	result := DB.Where("user_id = ? and folder_id in (?)", uid, ids).Find(&files)
	return files, result.Error
}

// GetTrashedFilesByFolderIDs finds all trashed files inside the given
// folders.
func GetTrashedFilesByFolderIDs(ids []uint, uid uint) ([]File, error) {
	var files []File
	result := DB.Unscoped().
		Where("user_id = ? and folder_id in (?) and deleted_at is not null", uid, ids).
		Find(&files)
	return files, result.Error
}

// FileNameExists reports whether a live sibling file with the given name
// already exists under folderID. excludeID ignores the node being
// mutated.
func FileNameExists(name string, folderID *uint, uid uint, excludeID uint) bool {
	var count int
	tx := DB.Model(&File{}).Where("name = ? and user_id = ?", name, uid)
	tx = scopeFileFolder(tx, folderID)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	tx.Count(&count)
	return count > 0
}

// UpdateFilePathsByFolderID rewrites the cached path of all files
// inside the given folder, trashed ones included.
func UpdateFilePathsByFolderID(folderID uint, newPath string) error {
	return DB.Unscoped().Model(&File{}).Where("folder_id = ?", folderID).
		Update("path", newPath).Error
}

// SoftDeleteFilesByIDs moves the given files into the trash.
func SoftDeleteFilesByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return DB.Where("id in (?)", ids).Delete(&File{}).Error
}

// RestoreFileByID flips a single trashed file back to live.
func RestoreFileByID(id uint) error {
	return DB.Unscoped().Model(&File{}).Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// DeleteFilesByIDs permanently removes file records.
func DeleteFilesByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return DB.Unscoped().Where("id in (?)", ids).Delete(&File{}).Error
}

// ListFiles returns a page of live files under folderID, optionally
// filtered by a name fragment.
func ListFiles(uid uint, folderID *uint, search string, page, limit int) ([]File, int, error) {
	var (
		files []File
		total int
	)
	tx := DB.Model(&File{}).Where("user_id = ?", uid)
	tx = scopeFileFolder(tx, folderID)
	tx = scopeSearch(tx, search)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := tx.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&files)
	return files, total, result.Error
}

// ListStarredFiles returns a page of starred live files.
func ListStarredFiles(uid uint, search string, page, limit int) ([]File, int, error) {
	var (
		files []File
		total int
	)
	tx := DB.Model(&File{}).Where("user_id = ? and is_starred = ?", uid, true)
	tx = scopeSearch(tx, search)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := tx.Order("starred_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&files)
	return files, total, result.Error
}

// ListTrashedFiles returns a page of trashed files.
func ListTrashedFiles(uid uint, search string, page, limit int) ([]File, int, error) {
	var (
		files []File
		total int
	)
	tx := DB.Unscoped().Model(&File{}).
		Where("user_id = ? and deleted_at is not null", uid)
	tx = scopeSearch(tx, search)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := tx.Order("deleted_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&files)
	return files, total, result.Error
}

// scopeFileFolder applies the nullable folder filter.
func scopeFileFolder(tx *gorm.DB, folderID *uint) *gorm.DB {
	if folderID == nil {
		return tx.Where("folder_id is null")
	}
	return tx.Where("folder_id = ?", *folderID)
}
