package model

import (
	"strings"
)

// FileEntry is one retained file or folder.
type FileEntry struct {
	FullPath    string // absolute path as delivered by the drop
	DisplayName string // base name captured at drop time
}

// NewFileEntry builds an entry, deriving the display name from the path.
func NewFileEntry(path string) FileEntry {
	return FileEntry{
		FullPath:    path,
		DisplayName: BaseName(path),
	}
}

// BaseName returns the text after the last path separator. Both '/' and '\'
// are treated as separators so Windows paths behave the same on every host.
// A path ending in a separator yields an empty name.
func BaseName(path string) string {
	return path[strings.LastIndexAny(path, `/\`)+1:]
}

// Label returns the display name, or the full path when the name is empty.
func (e FileEntry) Label() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.FullPath
}
