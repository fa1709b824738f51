package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/a17hq/btviz/pkg/dotcode"
	"github.com/a17hq/btviz/pkg/feed"
)

// Config holds the optional TOML configuration for feed-backed commands.
// Flags override file values; the file overrides built-in defaults.
//
// Example:
//
//	[feed]
//	addr = "localhost:6379"
//	channel = "btviz:snapshots"
//
//	[layout]
//	rank = "same"
//	rankdir = "TB"
//	ranksep = 0.2
type Config struct {
	Feed   FeedConfig   `toml:"feed"`
	Layout LayoutConfig `toml:"layout"`
}

// FeedConfig configures the snapshot feed connection.
type FeedConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
}

// LayoutConfig configures default layout hints for rendering.
type LayoutConfig struct {
	Rank    string  `toml:"rank"`
	RankDir string  `toml:"rankdir"`
	RankSep float64 `toml:"ranksep"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() Config {
	return Config{
		Feed: FeedConfig{
			Addr:    "localhost:6379",
			Channel: feed.DefaultChannel,
		},
		Layout: LayoutConfig{
			Rank:    dotcode.DefaultRank,
			RankDir: dotcode.DefaultRankDir,
			RankSep: dotcode.DefaultRankSep,
		},
	}
}

// loadConfig returns the defaults overlaid with path's contents.
// An empty path returns the defaults; a missing file is an error so typos
// in --config surface instead of silently using defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// feedConfig converts the file representation to the feed package's form.
func (c Config) feedConfig() feed.Config {
	return feed.Config{
		Addr:     c.Feed.Addr,
		Password: c.Feed.Password,
		DB:       c.Feed.DB,
		Channel:  c.Feed.Channel,
	}
}
