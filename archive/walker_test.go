package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWalk(t *testing.T) {
	zipPath := makeArchive(t, "test.rar",
		zipEntry{"META-INF/ra.xml", "<connector/>"},
		zipEntry{"META-INF/MANIFEST.MF", "Manifest-Version: 1.0"},
		zipEntry{"acme.jar", "jar"},
		zipEntry{"lib/native.so", "so"},
	)

	tests := []struct {
		prefix string
		want   int
	}{
		{"META-INF/", 2},
		{"lib/", 1},
		{"nonexistent/", 0},
		{"", 4},
		// prefix matching is case sensitive
		{"meta-inf/", 0},
	}
	for _, tt := range tests {
		var visited []string
		err := Walk(zipPath, tt.prefix, func(archive string, file *zip.File) error {
			if archive != zipPath {
				t.Fatalf("archive = %s, want %s", archive, zipPath)
			}
			visited = append(visited, file.Name)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk(%q) error = %v", tt.prefix, err)
		}
		if len(visited) != tt.want {
			t.Fatalf("Walk(%q) visited %v, want %d files", tt.prefix, visited, tt.want)
		}
	}

	stopErr := errors.New("stop")
	visited := 0
	err := Walk(zipPath, "", func(string, *zip.File) error {
		visited++
		if visited == 2 {
			return stopErr
		}
		return nil
	})
	if err != stopErr || visited != 2 {
		t.Fatalf("Walk() must stop on error, got %v after %d files", err, visited)
	}
}

func TestWalk_SkipsDirectories(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "dirs.rar")
	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	w := zip.NewWriter(f)
	dir := &zip.FileHeader{Name: "META-INF/"}
	dir.SetMode(os.ModeDir | 0755)
	if _, err := w.CreateHeader(dir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	fw, _ := w.Create("META-INF/ra.xml")
	fw.Write([]byte("x"))
	w.Close()
	f.Close()

	var visited []string
	if err := Walk(zipPath, "META-INF", func(_ string, f *zip.File) error {
		visited = append(visited, f.Name)
		return nil
	}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(visited) != 1 || visited[0] != "META-INF/ra.xml" {
		t.Fatalf("directories must be skipped, visited %v", visited)
	}
}

func TestWalk_UnsafePaths(t *testing.T) {
	for _, name := range []string{"../evil.xml", "META-INF/../../evil.xml", "/abs/ra.xml", `\abs\ra.xml`} {
		zipPath := makeArchive(t, "unsafe.rar", zipEntry{"ok.txt", "ok"}, zipEntry{name, "x"})
		if err := Walk(zipPath, "", func(string, *zip.File) error { return nil }); err == nil {
			t.Fatalf("expected error for entry %q", name)
		}
	}
	for _, name := range []string{"META-INF/ra.xml", "a..b/c", "..."} {
		if !isSafePath(name) {
			t.Fatalf("%q must be considered safe", name)
		}
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk("/nonexistent/file.rar", "", func(string, *zip.File) error { return nil }); err == nil {
		t.Fatalf("Expected error for nonexistent file")
	}
	invalid := filepath.Join(t.TempDir(), "invalid.rar")
	if err := os.WriteFile(invalid, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to create invalid zip: %v", err)
	}
	if err := Walk(invalid, "", func(string, *zip.File) error { return nil }); err == nil {
		t.Fatalf("Expected error for invalid zip file")
	}
}

func TestReadDescriptor(t *testing.T) {
	zipPath := makeArchive(t, "acme.rar",
		zipEntry{"acme.jar", "jar"},
		zipEntry{"meta-inf/RA.XML", "<connector version=\"1.7\"/>"},
	)
	data, err := ReadDescriptor(zipPath, "META-INF/ra.xml")
	if err != nil {
		t.Fatalf("ReadDescriptor() error = %v", err)
	}
	if string(data) != `<connector version="1.7"/>` {
		t.Fatalf("unexpected descriptor %q", data)
	}
	if _, err := ReadDescriptor(zipPath, "META-INF/other.xml"); !errors.Is(err, ErrNoDescriptor) {
		t.Fatalf("expected ErrNoDescriptor, got %v", err)
	}
}
