package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "registry.txt")
	if err := os.WriteFile(file, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file",
			path: file,
			want: true,
		},
		{
			name: "missing file",
			path: filepath.Join(dir, "missing.txt"),
			want: false,
		},
		{
			name: "directory is not a file",
			path: dir,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "registry.txt")
	if err := os.WriteFile(file, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false", file)
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists() = true for missing path, want false")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads file content", func(t *testing.T) {
		file := filepath.Join(dir, "small.txt")
		if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}

		data, err := ReadFile(file)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("ReadFile() = %q, want %q", data, "hello")
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(dir, "missing.txt")); err == nil {
			t.Error("ReadFile() expected error for missing file")
		}
	})

	t.Run("rejects file above size limit", func(t *testing.T) {
		file := filepath.Join(dir, "large.txt")
		if err := os.WriteFile(file, []byte(strings.Repeat("x", 100)), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := ReadFile(file, 10)
		if err == nil {
			t.Fatal("ReadFile() expected error for oversized file")
		}
		if !strings.Contains(err.Error(), "file too large") {
			t.Errorf("ReadFile() error = %v, want size error", err)
		}
	})

	t.Run("accepts file at exact size limit", func(t *testing.T) {
		file := filepath.Join(dir, "exact.txt")
		if err := os.WriteFile(file, []byte(strings.Repeat("x", 10)), 0o644); err != nil {
			t.Fatal(err)
		}

		data, err := ReadFile(file, 10)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if len(data) != 10 {
			t.Errorf("ReadFile() read %d bytes, want 10", len(data))
		}
	})
}
