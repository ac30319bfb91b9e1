package model

import (
	"time"

	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/jinzhu/gorm"
)

// Folder directory node of the tree. Path is the materialized chain of
// ancestor names; it is a cache kept in sync on every structural write,
// the parent chain stays the source of truth. DeletedAt doubles as the
// trash flag: live queries use the default scope, trash queries go
// through Unscoped.
type Folder struct {
	gorm.Model
	Name      string `gorm:"index:idx_folder_name"`
	ParentID  *uint  `gorm:"index:idx_folder_parent"`
	OwnerID   uint   `gorm:"index:idx_folder_owner"`
	Path      string `gorm:"size:65536"`
	IsStarred bool
	StarredAt *time.Time
}

// Create inserts the folder record.
func (folder *Folder) Create() (uint, error) {
	if err := DB.Create(folder).Error; err != nil {
		util.Log().Warning("Failed to insert folder record: %s", err)
		return 0, err
	}
	return folder.ID, nil
}

// Update applies the given column values to the folder record.
func (folder *Folder) Update(val map[string]interface{}) error {
	return DB.Model(folder).Updates(val).Error
}

// GetFolderByID finds a live folder owned by uid.
func GetFolderByID(id uint, uid uint) (Folder, error) {
	var folder Folder
	result := DB.Where("id = ? and owner_id = ?", id, uid).First(&folder)
	return folder, result.Error
}

// GetTrashedFolderByID finds a trashed folder owned by uid.
func GetTrashedFolderByID(id uint, uid uint) (Folder, error) {
	var folder Folder
	result := DB.Unscoped().
		Where("id = ? and owner_id = ? and deleted_at is not null", id, uid).
		First(&folder)
	return folder, result.Error
}

// GetFolderByIDUnscoped finds a folder owned by uid regardless of its
// trash state. Ancestor walks use this so that a trashed ancestor does
// not read as a broken chain.
func GetFolderByIDUnscoped(id uint, uid uint) (Folder, error) {
	var folder Folder
	result := DB.Unscoped().Where("id = ? and owner_id = ?", id, uid).First(&folder)
	return folder, result.Error
}

// GetFoldersByParentIDs finds all live folders directly under the given
// parents.
func GetFoldersByParentIDs(ids []uint, uid uint) ([]Folder, error) {
	var folders []Folder
	result := DB.Where("owner_id = ? and parent_id in (?)", uid, ids).Find(&folders)
	return folders, result.Error
}

// GetTrashedFoldersByParentIDs finds all trashed folders directly under
// the given parents.
func GetTrashedFoldersByParentIDs(ids []uint, uid uint) ([]Folder, error) {
	var folders []Folder
	result := DB.Unscoped().
		Where("owner_id = ? and parent_id in (?) and deleted_at is not null", uid, ids).
		Find(&folders)
	return folders, result.Error
}

// GetFoldersByParentIDsUnscoped finds all folders directly under the
// given parents regardless of trash state. Path cascades use this so
// that trashed subtrees keep a consistent path cache.
func GetFoldersByParentIDsUnscoped(ids []uint, uid uint) ([]Folder, error) {
	var folders []Folder
	result := DB.Unscoped().
		Where("owner_id = ? and parent_id in (?)", uid, ids).
		Find(&folders)
	return folders, result.Error
}

// UpdateFolderPathByID rewrites the cached path of a folder in any
// trash state.
func UpdateFolderPathByID(id uint, path string) error {
	return DB.Unscoped().Model(&Folder{}).Where("id = ?", id).
		Update("path", path).Error
}

// FolderNameExists reports whether a live sibling folder with the given
// name already exists under parentID. excludeID ignores the node being
// mutated.
func FolderNameExists(name string, parentID *uint, uid uint, excludeID uint) bool {
	var count int
	tx := DB.Model(&Folder{}).Where("name = ? and owner_id = ?", name, uid)
	tx = scopeFolderParent(tx, parentID)
	if excludeID > 0 {
		tx = tx.Where("id <> ?", excludeID)
	}
	tx.Count(&count)
	return count > 0
}

// SoftDeleteFoldersByIDs moves the given folders into the trash.
func SoftDeleteFoldersByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return DB.Where("id in (?)", ids).Delete(&Folder{}).Error
}

// RestoreFolderByID flips a single trashed folder back to live.
func RestoreFolderByID(id uint) error {
	return DB.Unscoped().Model(&Folder{}).Where("id = ?", id).
		Update("deleted_at", nil).Error
}

// DeleteFoldersByIDs permanently removes folder records.
func DeleteFoldersByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return DB.Unscoped().Where("id in (?)", ids).Delete(&Folder{}).Error
}

// ListFolders returns a page of live folders under parentID, optionally
// filtered by a name fragment.
func ListFolders(uid uint, parentID *uint, search string, page, limit int) ([]Folder, int, error) {
	var (
		folders []Folder
		total   int
	)
	tx := DB.Model(&Folder{}).Where("owner_id = ?", uid)
	tx = scopeFolderParent(tx, parentID)
	tx = scopeSearch(tx, search)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := tx.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&folders)
	return folders, total, result.Error
}

// ListStarredFolders returns a page of starred live folders.
func ListStarredFolders(uid uint, search string, page, limit int) ([]Folder, int, error) {
	var (
		folders []Folder
		total   int
	)
	tx := DB.Model(&Folder{}).Where("owner_id = ? and is_starred = ?", uid, true)
	tx = scopeSearch(tx, search)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := tx.Order("starred_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&folders)
	return folders, total, result.Error
}

// ListTrashedFolders returns a page of trashed folders.
func ListTrashedFolders(uid uint, search string, page, limit int) ([]Folder, int, error) {
	var (
		folders []Folder
		total   int
	)
	tx := DB.Unscoped().Model(&Folder{}).
		Where("owner_id = ? and deleted_at is not null", uid)
	tx = scopeSearch(tx, search)

	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	result := tx.Order("deleted_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&folders)
	return folders, total, result.Error
}

// scopeFolderParent applies the nullable parent filter.
func scopeFolderParent(tx *gorm.DB, parentID *uint) *gorm.DB {
	if parentID == nil {
		return tx.Where("parent_id is null")
	}
	return tx.Where("parent_id = ?", *parentID)
}

// scopeSearch applies an optional name fragment filter.
func scopeSearch(tx *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return tx
	}
	return tx.Where("name like ?", "%"+search+"%")
}
