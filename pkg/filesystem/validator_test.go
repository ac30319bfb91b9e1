package filesystem

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSystem_ValidateLegalName(t *testing.T) {
	asserts := assert.New(t)
	fs := newMockFS(nil)

	asserts.True(fs.ValidateLegalName("reports"))
	asserts.True(fs.ValidateLegalName("annual report 2024.pdf"))

	asserts.False(fs.ValidateLegalName(""))
	asserts.False(fs.ValidateLegalName("bad/name"))
	asserts.False(fs.ValidateLegalName("bad\\name"))
	asserts.False(fs.ValidateLegalName("what?"))
	asserts.False(fs.ValidateLegalName(" padded"))
	asserts.False(fs.ValidateLegalName("padded "))
	asserts.False(fs.ValidateLegalName(strings.Repeat("a", 256)))
}

func TestFileSystem_ValidateExtension(t *testing.T) {
	asserts := assert.New(t)
	fs := newMockFS(nil)

	asserts.True(fs.ValidateExtension("a.txt"))
	asserts.True(fs.ValidateExtension("archive.tar.gz"))
	asserts.True(fs.ValidateExtension("noext"))

	asserts.False(fs.ValidateExtension("setup.exe"))
	asserts.False(fs.ValidateExtension("SETUP.EXE"))
	asserts.False(fs.ValidateExtension("script.bat"))
	asserts.False(fs.ValidateExtension("old.com"))
}

func TestFileSystem_ValidateFileSizeAndCapacity(t *testing.T) {
	asserts := assert.New(t)
	fs := newMockFS(nil)

	asserts.True(fs.ValidateFileSize(1))
	asserts.False(fs.ValidateFileSize(500 << 20))

	// Storage 200 of 1 GiB used in the fixture
	asserts.True(fs.ValidateCapacity(1024))
	asserts.False(fs.ValidateCapacity(1 << 31))
}
