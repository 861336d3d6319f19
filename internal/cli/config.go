package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	"github.com/flowdeck/flowdeck/pkg/layout"
	"github.com/flowdeck/flowdeck/pkg/pipeline"
)

// configFileName is the config file looked up under the config directory.
const configFileName = "config.toml"

// Config holds user-level defaults loaded from ~/.config/flowdeck/config.toml.
// Every field has a working default; a missing file is not an error.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig configures default layout parameters.
type LayoutConfig struct {
	Orientation string   `toml:"orientation"`
	NodeGap     float64  `toml:"node_gap"`
	LayerGap    float64  `toml:"layer_gap"`
	Sweeps      int      `toml:"sweeps"`
	Formats     []string `toml:"formats"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	RedisURL string `toml:"redis_url"`
	MongoURL string `toml:"mongo_url"`
	MongoDB  string `toml:"mongo_db"`
	StoreDir string `toml:"store_dir"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Orientation: string(diagram.Horizontal),
			NodeGap:     layout.DefaultNodeGap,
			LayerGap:    layout.DefaultLayerGap,
			Sweeps:      layout.DefaultSweeps,
			Formats:     []string{pipeline.FormatSVG},
		},
		Server: ServerConfig{
			Addr:    ":8463",
			MongoDB: appName,
		},
	}
}

// LoadConfig reads the config file at path. An empty path resolves to
// the standard location. Missing files return the defaults; malformed
// files return an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// PipelineOptions converts the layout section into pipeline options.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Orientation: diagram.Orientation(c.Layout.Orientation),
		NodeGap:     c.Layout.NodeGap,
		LayerGap:    c.Layout.LayerGap,
		Sweeps:      c.Layout.Sweeps,
		Formats:     append([]string(nil), c.Layout.Formats...),
	}
}
