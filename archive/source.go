package archive

import (
	"fmt"
	"io"
	"os"

	"github.com/h2non/filetype"
)

// header size sufficient for zip signature detection
const headSize = 262

// IsArchive reports whether head looks like zip container.
func IsArchive(head []byte) bool {
	return filetype.Is(head, "zip")
}

// Source is descriptor loaded either from plain XML file or from an archive.
type Source struct {
	Path    string
	Archive bool
	Data    []byte
}

// Open loads descriptor from path. When path is an archive the descriptor is
// taken from the entry named descriptor.
func Open(path, descriptor string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	head := make([]byte, headSize)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	src := &Source{Path: path, Archive: IsArchive(head[:n])}
	if src.Archive {
		if src.Data, err = ReadDescriptor(path, descriptor); err != nil {
			return nil, err
		}
		return src, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if src.Data, err = io.ReadAll(f); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}
	return src, nil
}
