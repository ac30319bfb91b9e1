package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillSlash(t *testing.T) {
	asserts := assert.New(t)
	asserts.Equal("/", FillSlash("/"))
	asserts.Equal("/docs/", FillSlash("/docs"))
}

func TestRemoveSlash(t *testing.T) {
	asserts := assert.New(t)
	asserts.Equal("/", RemoveSlash("/"))
	asserts.Equal("/docs", RemoveSlash("/docs/"))
	asserts.Equal("/docs", RemoveSlash("/docs"))
}

func TestExt(t *testing.T) {
	asserts := assert.New(t)
	asserts.Equal(".txt", Ext("a.txt"))
	asserts.Equal(".exe", Ext("SETUP.EXE"))
	asserts.Equal(".gz", Ext("archive.tar.gz"))
	asserts.Equal("", Ext("noext"))
}
