package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// seedCache lays out a cache directory shaped like the file backend
// writes it: shard dirs holding entry files.
func seedCache(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	entries := map[string]string{
		"ab/one.artifact":   "<svg/>",
		"ab/two.artifact":   "payload",
		"cd/three.artifact": "png-bytes",
	}
	for rel, content := range entries {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestMeasureArtifacts(t *testing.T) {
	dir := seedCache(t)

	count, size, err := measureArtifacts(dir)
	if err != nil {
		t.Fatalf("measureArtifacts error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if want := int64(len("<svg/>") + len("payload") + len("png-bytes")); size != want {
		t.Errorf("size = %d, want %d", size, want)
	}

	// Missing directory is an empty cache, not an error
	count, size, err = measureArtifacts(filepath.Join(dir, "nope"))
	if err != nil || count != 0 || size != 0 {
		t.Errorf("missing dir: count=%d size=%d err=%v", count, size, err)
	}
}

func TestClearArtifacts(t *testing.T) {
	dir := seedCache(t)

	count, size, err := clearArtifacts(dir)
	if err != nil {
		t.Fatalf("clearArtifacts error: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if size == 0 {
		t.Error("size should report the freed bytes")
	}

	// Shard dirs are pruned but the cache root survives
	left, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(left) != 0 {
		t.Errorf("cache root should be empty, got %v", left)
	}

	// Clearing an already-empty cache is fine
	if count, _, err := clearArtifacts(dir); err != nil || count != 0 {
		t.Errorf("second clear: count=%d err=%v", count, err)
	}

	// And so is clearing a cache that was never created
	if _, _, err := clearArtifacts(filepath.Join(dir, "nope")); err != nil {
		t.Errorf("missing dir: %v", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
