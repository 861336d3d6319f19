package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/pkg/pipeline"
)

// renderCommand creates the render command for generating diagram artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		refresh    bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "render [diagram.json]",
		Short: "Render a diagram to SVG, PNG, DOT, or JSON",
		Long: `Render a diagram to one or more output formats.

The render command lays out the diagram and writes one file per requested
format. SVG and JSON come from the built-in renderer; PNG and DOT go
through Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := validateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", strings.Join(opts.Formats, ","), "output format(s): svg (default), png, dot, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")
	cmd.Flags().StringVar((*string)(&opts.Orientation), "orientation", string(opts.Orientation), "layout orientation: horizontal (default), vertical")
	cmd.Flags().Float64Var(&opts.NodeGap, "node-gap", opts.NodeGap, "minimum gap between nodes within a layer")
	cmd.Flags().Float64Var(&opts.LayerGap, "layer-gap", opts.LayerGap, "distance between adjacent layers")
	cmd.Flags().IntVar(&opts.Sweeps, "sweeps", opts.Sweeps, "crossing reduction sweep count")

	return cmd
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if err := pipeline.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the diagram, runs the full pipeline, and writes one file
// per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache, refresh bool) error {
	d, err := pipeline.LoadFile(input)
	if err != nil {
		return fmt.Errorf("load diagram %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	opts.Refresh = refresh
	if opts.Orientation == "" {
		opts.Orientation = d.Orientation
	}

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	result, err := runner.Execute(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Single format with an explicit output path keeps that exact path.
	if len(opts.Formats) == 1 && output != "" {
		format := opts.Formats[0]
		if err := os.WriteFile(output, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", output, err)
		}
		printSuccess("Render complete")
		printFile(output)
		printStats(len(d.Nodes), len(d.Edges), result.CacheInfo.LayoutHit)
		return nil
	}

	base := basePath(output, input)
	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(d.Nodes), len(d.Edges), result.CacheInfo.LayoutHit)

	return nil
}
