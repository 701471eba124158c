package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before set
	_, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil || hit {
		t.Fatalf("Get before Set: hit=%v err=%v", hit, err)
	}

	// Round trip
	if err := c.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = (%q, %v), want cached value", data, hit)
	}

	// Expired entries are treated as misses
	if err := c.Set(ctx, "artifact:old", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:old"); hit {
		t.Error("expired entry should be a miss")
	}

	// Delete
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("deleted entry should be a miss")
	}

	// Deleting a missing key is fine
	if err := c.Delete(ctx, "artifact:never"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	fc := c.(*FileCache)
	path := fc.entryPath("artifact:bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not an entry"), 0644); err != nil {
		t.Fatal(err)
	}

	// A corrupt entry is a miss, not an error
	_, hit, err := c.Get(ctx, "artifact:bad")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("corrupt entry should be a miss")
	}

	// And it is removed so the next render overwrites it cleanly
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheEntryLayout(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Entries live in a two-character shard directory
	shards, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(shards) != 1 || !shards[0].IsDir() || len(shards[0].Name()) != 2 {
		t.Fatalf("expected a single two-char shard dir, got %v", shards)
	}

	files, err := os.ReadDir(filepath.Join(dir, shards[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0].Name(), artifactExt) {
		t.Fatalf("expected one %s entry, got %v", artifactExt, files)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// PackKey
	if got := k.PackKey("outline"); got != "pack:outline" {
		t.Errorf("PackKey unexpected: %s", got)
	}

	// ArtifactKey should include every option in the hash
	base := ArtifactKeyOpts{Format: "svg", Color: "#000000", SizePx: 256}
	ak1 := k.ArtifactKey("hash123", base)

	variants := []ArtifactKeyOpts{
		{Format: "png", Color: "#000000", SizePx: 256},
		{Format: "svg", Color: "#ff0000", SizePx: 256},
		{Format: "svg", Color: "#000000", SizePx: 512},
		{Format: "svg", Color: "#000000", SizePx: 256, Padding: 0.1},
		{Format: "svg", Color: "#000000", SizePx: 256, CornerRadius: 25},
		{Format: "svg", Color: "#000000", SizePx: 256, Background: "#fff"},
		{Format: "svg", Color: "#000000", SizePx: 256, Convention: "stroke"},
	}
	for i, opts := range variants {
		if k.ArtifactKey("hash123", opts) == ak1 {
			t.Errorf("variant %d should produce a different key", i)
		}
	}

	// Different icon hash, same opts
	if k.ArtifactKey("hash456", base) == ak1 {
		t.Error("different icon hashes should produce different keys")
	}

	// Deterministic
	if k.ArtifactKey("hash123", base) != ak1 {
		t.Error("ArtifactKey should be deterministic")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:123:")

	// All keys should be prefixed
	if got := scoped.PackKey("solid"); got != "tenant:123:pack:solid" {
		t.Errorf("ScopedKeyer PackKey unexpected: %s", got)
	}

	ak := scoped.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	if len(ak) < 11 || ak[:11] != "tenant:123:" {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", ak)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "p:")
	if got := scoped.PackKey("outline"); got != "p:pack:outline" {
		t.Errorf("nil inner should fall back to the default keyer: %s", got)
	}
}
