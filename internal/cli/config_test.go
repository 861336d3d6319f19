package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	"github.com/flowdeck/flowdeck/pkg/layout"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Layout.Orientation != string(diagram.Horizontal) {
		t.Errorf("orientation = %q, want %q", cfg.Layout.Orientation, diagram.Horizontal)
	}
	if cfg.Layout.NodeGap != layout.DefaultNodeGap {
		t.Errorf("node gap = %v, want %v", cfg.Layout.NodeGap, layout.DefaultNodeGap)
	}
	if cfg.Server.Addr == "" {
		t.Error("server addr should have a default")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig missing file error: %v", err)
	}
	if cfg.Layout.Sweeps != layout.DefaultSweeps {
		t.Errorf("sweeps = %d, want default %d", cfg.Layout.Sweeps, layout.DefaultSweeps)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
orientation = "vertical"
node_gap = 90.0
formats = ["svg", "png"]

[server]
addr = ":9000"
redis_url = "redis://localhost:6379/0"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Layout.Orientation != "vertical" {
		t.Errorf("orientation = %q, want vertical", cfg.Layout.Orientation)
	}
	if cfg.Layout.NodeGap != 90.0 {
		t.Errorf("node gap = %v, want 90", cfg.Layout.NodeGap)
	}
	if len(cfg.Layout.Formats) != 2 {
		t.Errorf("formats = %v, want 2 entries", cfg.Layout.Formats)
	}
	// Unset fields keep their defaults.
	if cfg.Layout.LayerGap != layout.DefaultLayerGap {
		t.Errorf("layer gap = %v, want default %v", cfg.Layout.LayerGap, layout.DefaultLayerGap)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Server.RedisURL == "" {
		t.Error("redis url not loaded")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout\nbroken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should fail on malformed TOML")
	}
}

func TestPipelineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Orientation = "vertical"
	cfg.Layout.Formats = []string{"svg", "dot"}

	opts := cfg.PipelineOptions()
	if opts.Orientation != diagram.Vertical {
		t.Errorf("orientation = %q, want vertical", opts.Orientation)
	}
	if len(opts.Formats) != 2 {
		t.Errorf("formats = %v, want 2 entries", opts.Formats)
	}

	// Mutating the options must not touch the config.
	opts.Formats[0] = "png"
	if cfg.Layout.Formats[0] != "svg" {
		t.Error("PipelineOptions should copy the formats slice")
	}
}
