package util

import (
	"path"
	"strings"
)

// FillSlash appends a trailing `/` to path unless it is the root.
func FillSlash(p string) string {
	if p == "/" {
		return p
	}
	return p + "/"
}

// RemoveSlash strips the trailing `/` from path unless it is the root.
func RemoveSlash(p string) string {
	if len(p) > 1 {
		return strings.TrimSuffix(p, "/")
	}
	return p
}

// Ext returns the lower-cased file name extension including the dot,
// or an empty string when the name carries none.
func Ext(name string) string {
	return strings.ToLower(path.Ext(name))
}
