// Package archive handles resource adapter archives: zip containers with the
// deployment descriptor stored under META-INF.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNoDescriptor is returned when archive does not contain requested
// descriptor entry.
var ErrNoDescriptor = errors.New("descriptor not found in archive")

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks all files in the archive whose names start with prefix, calling
// walkFn for each. Archives with absolute entry names or ".." components are
// refused.
func Walk(archive, prefix string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadDescriptor returns content of the entry name from archive. Names are
// compared case insensitively since archives built on some systems upper
// case META-INF differently.
func ReadDescriptor(archive, name string) ([]byte, error) {
	var data []byte
	errFound := errors.New("found")
	err := Walk(archive, "", func(_ string, f *zip.File) error {
		if !strings.EqualFold(f.Name, name) {
			return nil
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		if data, err = io.ReadAll(rc); err != nil {
			return fmt.Errorf("unable to read %s: %w", f.Name, err)
		}
		return errFound
	})
	switch {
	case errors.Is(err, errFound):
		return data, nil
	case err != nil:
		return nil, err
	}
	return nil, fmt.Errorf("%s: %w: %s", archive, ErrNoDescriptor, name)
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
