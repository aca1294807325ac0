package studyinput

import (
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// FileHandle is a display record for an attached file. Only the name and size
// are ever read; file contents are never opened.
type FileHandle struct {
	Name string
	Path string
	// Size is -1 when the file could not be stat'ed.
	Size int64
}

// SizeLabel returns a human readable size or "" when unknown.
func (h FileHandle) SizeLabel() string {
	if h.Size < 0 {
		return ""
	}
	return humanize.Bytes(uint64(h.Size))
}

// HandlesFromPaths builds handles in the order given.
func HandlesFromPaths(paths []string) []FileHandle {
	if len(paths) == 0 {
		return nil
	}
	out := make([]FileHandle, 0, len(paths))
	for _, p := range paths {
		h := FileHandle{Name: filepath.Base(p), Path: p, Size: -1}
		if info, err := os.Stat(p); err == nil {
			h.Size = info.Size()
		}
		out = append(out, h)
	}
	return out
}

func fileNames(files []FileHandle) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}
