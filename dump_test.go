// dump_test.go

package tello

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileDumperWritesPackets(t *testing.T) {
	dir := t.TempDir()
	d, err := NewFileDumper(dir, "ctrl", nil)
	if err != nil {
		t.Fatalf("NewFileDumper: %v", err)
	}

	d.Dump([]byte{1, 2, 3})
	d.Dump([]byte{4, 5})

	var sessionDir string
	err = filepath.Walk(filepath.Join(dir, "ctrl"), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != filepath.Join(dir, "ctrl") {
			sessionDir = path
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walking dump dir: %v", err)
	}
	if sessionDir == "" {
		t.Fatal("expected a session subdirectory under ctrl")
	}

	entries, err := os.ReadDir(sessionDir)
	if err != nil {
		t.Fatalf("reading session dir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 dumped packet files, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(sessionDir, "packet_1"))
	if err != nil {
		t.Fatalf("reading packet_1: %v", err)
	}
	if string(data) != "\x01\x02\x03" {
		t.Errorf("packet_1 contents = %v, want [1 2 3]", data)
	}
}

func TestNewFileDumperErrorsOnUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "ctrl")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("creating blocking file: %v", err)
	}

	if _, err := NewFileDumper(dir, "ctrl", nil); err == nil {
		t.Error("expected an error when the dump path is blocked by a plain file")
	}
}
