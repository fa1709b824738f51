package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/feed"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Feed.Addr != "localhost:6379" {
		t.Errorf("Feed.Addr = %q", cfg.Feed.Addr)
	}
	if cfg.Feed.Channel != feed.DefaultChannel {
		t.Errorf("Feed.Channel = %q", cfg.Feed.Channel)
	}
	if cfg.Layout.Rank != dotcode.DefaultRank {
		t.Errorf("Layout.Rank = %q", cfg.Layout.Rank)
	}
	if cfg.Layout.RankDir != dotcode.DefaultRankDir {
		t.Errorf("Layout.RankDir = %q", cfg.Layout.RankDir)
	}
	if cfg.Layout.RankSep != dotcode.DefaultRankSep {
		t.Errorf("Layout.RankSep = %v", cfg.Layout.RankSep)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "btviz.toml")
	content := `
[feed]
addr = "redis.internal:6379"
channel = "robots:tree"

[layout]
rankdir = "LR"
ranksep = 0.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Feed.Addr != "redis.internal:6379" {
		t.Errorf("Feed.Addr = %q", cfg.Feed.Addr)
	}
	if cfg.Feed.Channel != "robots:tree" {
		t.Errorf("Feed.Channel = %q", cfg.Feed.Channel)
	}
	if cfg.Layout.RankDir != "LR" {
		t.Errorf("Layout.RankDir = %q", cfg.Layout.RankDir)
	}
	if cfg.Layout.RankSep != 0.5 {
		t.Errorf("Layout.RankSep = %v", cfg.Layout.RankSep)
	}

	// Sections absent from the file keep their defaults.
	if cfg.Layout.Rank != dotcode.DefaultRank {
		t.Errorf("Layout.Rank = %q, want default", cfg.Layout.Rank)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("loadConfig: want error for missing file")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[feed\naddr = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig: want error for malformed file")
	}
}
