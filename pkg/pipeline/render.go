package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flowdeck/flowdeck/pkg/render"
)

// RenderFromLayout renders every requested format from a computed layout.
// Formats are rendered independently; the first failure aborts the batch.
func RenderFromLayout(ctx context.Context, laid Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, laid, format)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, laid Layout, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.SVG(laid.Diagram), nil
	case FormatDOT:
		return []byte(render.ToDOT(laid.Diagram)), nil
	case FormatPNG:
		return render.RenderPNG(ctx, render.ToDOT(laid.Diagram))
	case FormatJSON:
		return json.MarshalIndent(laid, "", "  ")
	default:
		return nil, fmt.Errorf("invalid format: %q", format)
	}
}
