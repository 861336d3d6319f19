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

// layoutCommand creates the layout command for computing diagram layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
	)
	opts := c.pipelineOptions()

	cmd := &cobra.Command{
		Use:   "layout [diagram.json]",
		Short: "Compute node positions and edge handles for a diagram",
		Long: `Compute node positions and edge handles for a diagram.

The layout command takes a diagram.json file and computes coordinates for
every node plus attachment handles for every edge. The output is a
layout.json file that can be rendered with the 'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache, refresh)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	// Layout flags
	cmd.Flags().StringVar((*string)(&opts.Orientation), "orientation", string(opts.Orientation), "layout orientation: horizontal (default), vertical")
	cmd.Flags().Float64Var(&opts.NodeGap, "node-gap", opts.NodeGap, "minimum gap between nodes within a layer")
	cmd.Flags().Float64Var(&opts.LayerGap, "layer-gap", opts.LayerGap, "distance between adjacent layers")
	cmd.Flags().IntVar(&opts.Sweeps, "sweeps", opts.Sweeps, "crossing reduction sweep count")

	return cmd
}

// runLayout loads the diagram, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache, refresh bool) error {
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

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	laid, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	data, err := pipeline.MarshalLayout(laid)
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(d.Nodes), len(d.Edges), cacheHit)
	printNewline()
	printNextStep("Render", "flowdeck render "+input)

	return nil
}
