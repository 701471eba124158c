package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/iconclip/iconclip/pkg/errors"
)

func TestParseRef(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		wantPack string
		wantIcon string
		wantCode errors.Code
	}{
		{"full ref", "outline/heart", "outline", "heart", ""},
		{"bare icon uses default pack", "heart", "solid", "heart", ""},
		{"too many segments", "a/b/c", "", "", errors.ErrCodeInvalidRef},
		{"bad pack", "Bad Pack/heart", "", "", errors.ErrCodeInvalidPack},
		{"bad icon", "outline/../../etc", "", "", errors.ErrCodeInvalidRef},
		{"empty icon", "outline/", "", "", errors.ErrCodeInvalidRef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack, icon, err := parseRef(tt.ref, "solid")
			if errors.GetCode(err) != tt.wantCode {
				t.Fatalf("code = %v (%v), want %v", errors.GetCode(err), err, tt.wantCode)
			}
			if err != nil {
				return
			}
			if pack != tt.wantPack || icon != tt.wantIcon {
				t.Errorf("parseRef() = (%q, %q), want (%q, %q)", pack, icon, tt.wantPack, tt.wantIcon)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, configFile)
	content := `
pack = "solid"
color = "#ff0000"
padding = 0.1
size = 512
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := loadConfigFile(path, DefaultConfig())
	if cfg.Pack != "solid" {
		t.Errorf("Pack = %q, want solid", cfg.Pack)
	}
	if cfg.Color != "#ff0000" {
		t.Errorf("Color = %q, want #ff0000", cfg.Color)
	}
	if cfg.Padding != 0.1 {
		t.Errorf("Padding = %v, want 0.1", cfg.Padding)
	}
	if cfg.Size != 512 {
		t.Errorf("Size = %v, want 512", cfg.Size)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Background != DefaultConfig().Background {
		t.Errorf("Background = %q, want default", cfg.Background)
	}
}

func TestLoadConfigFileFallbacks(t *testing.T) {
	// Missing file keeps the passed-in defaults.
	cfg := loadConfigFile(filepath.Join(t.TempDir(), "nope.toml"), DefaultConfig())
	if cfg != DefaultConfig() {
		t.Errorf("missing file should return defaults, got %+v", cfg)
	}

	// Malformed file resets to defaults.
	dir := t.TempDir()
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte("pack = ["), 0644); err != nil {
		t.Fatal(err)
	}
	cfg = loadConfigFile(path, DefaultConfig())
	if cfg != DefaultConfig() {
		t.Errorf("malformed file should return defaults, got %+v", cfg)
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		icon   string
		want   string
	}{
		{"", "heart", "heart"},
		{"out.svg", "heart", "out"},
		{"out.png", "heart", "out"},
		{"out", "heart", "out"},
		{"dir/out.txt", "heart", "dir/out.txt"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.icon); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.icon, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats("", "svg"); len(got) != 1 || got[0] != "svg" {
		t.Errorf("parseFormats empty = %v, want [svg]", got)
	}
	got := parseFormats("svg,png", "svg")
	if len(got) != 2 || got[0] != "svg" || got[1] != "png" {
		t.Errorf("parseFormats list = %v, want [svg png]", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"copy", "render", "list", "browse", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q", name)
		}
	}
}

func TestVerboseFlagRaisesLogLevel(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if err := root.PersistentFlags().Set("verbose", "true"); err != nil {
		t.Fatalf("setting verbose flag: %v", err)
	}
	root.PersistentPreRun(root, nil)

	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestCompleteIconRefs(t *testing.T) {
	c := New(io.Discard, LogInfo)

	refs, directive := c.completeIconRefs(nil, nil, "")
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v, want NoFileComp", directive)
	}
	found := false
	for _, ref := range refs {
		if ref == "outline/heart" {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("candidates missing outline/heart: %v", refs)
	}

	// A present first argument means nothing left to complete
	if refs, _ := c.completeIconRefs(nil, []string{"outline/heart"}, ""); refs != nil {
		t.Errorf("expected no candidates after the ref, got %v", refs)
	}
}

func TestCompletePackNames(t *testing.T) {
	c := New(io.Discard, LogInfo)

	names, _ := c.completePackNames(nil, nil, "")
	want := map[string]bool{"outline": false, "solid": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("candidates missing pack %q: %v", name, names)
		}
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}
