package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

type zipEntry struct {
	name    string
	content string
}

// makeArchive writes entries into a new zip file under t.TempDir().
func makeArchive(t *testing.T, name string, entries ...zipEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, e := range entries {
		fw, err := w.Create(e.name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := fw.Write([]byte(e.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return path
}

func entries(t *testing.T, path string) map[string]string {
	t.Helper()
	got := make(map[string]string)
	err := Walk(path, "", func(_ string, f *zip.File) error {
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		got[f.Name] = string(data)
		return err
	})
	if err != nil {
		t.Fatalf("walk %s: %v", path, err)
	}
	return got
}
