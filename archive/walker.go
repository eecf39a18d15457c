// Package archive walks documents stored inside zip archives.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"
	"strings"
)

// Entry is a single regular file found in archive.
type Entry struct {
	Archive string // path to the archive itself
	Name    string // slash separated name inside archive
	file    *zip.File
}

// Open returns reader for entry content.
func (e *Entry) Open() (io.ReadCloser, error) {
	return e.file.Open()
}

// MatchFunc decides if named entry should be visited.
type MatchFunc func(name string) bool

// WalkFunc is called for every matching entry, returned error stops the walk.
type WalkFunc func(e *Entry) error

// Walk visits all regular files in archive accepted by match in archive
// order. Entries with absolute names or ".." components fail the walk.
func Walk(archive string, match MatchFunc, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path", name)
		}
		if f.FileInfo().IsDir() || (match != nil && !match(name)) {
			continue
		}
		if err := walkFn(&Entry{Archive: archive, Name: name, file: f}); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) || strings.Contains(name, ":") {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
