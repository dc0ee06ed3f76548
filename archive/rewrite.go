package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/multierr"
)

// Rewrite copies archive src into dst replacing content of entry name with
// data (or adding it when missing). Other entries are copied without
// recompression, with data descriptor flag cleared when fixZip is set. dst
// may be the same file as src.
func Rewrite(src, dst, name string, data []byte, fixZip bool) (err error) {
	r, err := fixzip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", src, err)
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	out, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			out.Close()
			os.Remove(out.Name())
		}
	}()

	w := fixzip.NewWriter(out)
	replaced := false
	for _, file := range r.File {
		if !isSafePath(file.Name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", file.Name)
		}
		if strings.EqualFold(file.Name, name) && !replaced {
			if err := writeEntry(w, file.Name, data); err != nil {
				return err
			}
			replaced = true
			continue
		}
		if fixZip {
			file.Flags &= ^fixzip.FlagDataDescriptor
		}
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", dst, err)
		}
	}
	if !replaced {
		if err := writeEntry(w, name, data); err != nil {
			return err
		}
	}

	if err := multierr.Append(w.Close(), out.Close()); err != nil {
		return fmt.Errorf("unable to finalize archive (%s): %w", dst, err)
	}
	// reader must be closed before replacing file it reads on some systems
	r.Close()
	return os.Rename(out.Name(), dst)
}

func writeEntry(w *fixzip.Writer, name string, data []byte) error {
	fw, err := w.Create(name)
	if err != nil {
		return fmt.Errorf("unable to add %s: %w", name, err)
	}
	if _, err := fw.Write(data); err != nil {
		return fmt.Errorf("unable to write %s: %w", name, err)
	}
	return nil
}
