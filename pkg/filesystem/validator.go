package filesystem

import (
	"strings"

	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/util"
)

// reservedCharacters may not appear in object names; the slash would
// corrupt materialized paths, the rest follow common filesystem rules.
var reservedCharacters = []string{"\\", "/", ":", "*", "?", "\"", "<", ">", "|"}

// blockedExtensions are rejected at upload time.
var blockedExtensions = []string{".exe", ".bat", ".cmd", ".scr", ".pif", ".com"}

// ValidateLegalName reports whether name is acceptable for a folder or
// file.
func (fs *FileSystem) ValidateLegalName(name string) bool {
	if name == "" || len(name) >= 256 {
		return false
	}
	for _, value := range reservedCharacters {
		if strings.Contains(name, value) {
			return false
		}
	}
	if name != strings.TrimSpace(name) {
		return false
	}
	return true
}

// ValidateExtension reports whether the file extension is allowed.
func (fs *FileSystem) ValidateExtension(fileName string) bool {
	return !util.ContainsString(blockedExtensions, util.Ext(fileName))
}

// ValidateFileSize reports whether size fits the configured per-file
// limit. A zero limit disables the check.
func (fs *FileSystem) ValidateFileSize(size uint64) bool {
	if conf.StorageConfig.MaxFileSize == 0 {
		return true
	}
	return size <= conf.StorageConfig.MaxFileSize
}

// ValidateCapacity reports whether the user still has size bytes of
// quota left.
func (fs *FileSystem) ValidateCapacity(size uint64) bool {
	return size <= fs.User.GetRemainingCapacity()
}
