package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flowdeck/flowdeck/pkg/pipeline"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// viewCommand creates the view command for browsing stored projects.
func (c *CLI) viewCommand() *cobra.Command {
	var storeDir string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse stored projects in an interactive terminal UI",
		Long: `Browse stored projects in an interactive terminal UI.

Lists the projects in the local file store. Selecting a project computes
its layout and prints a summary with suggested next commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), storeDir)
		},
	}

	cmd.Flags().StringVar(&storeDir, "store-dir", c.Config.Server.StoreDir, "directory for the file project store")

	return cmd
}

// runView lists projects, lets the user pick one, and prints a layout summary.
func (c *CLI) runView(ctx context.Context, storeDir string) error {
	st, err := store.NewFileStore(storeDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(ctx)

	projects, err := st.List(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %w", err)
	}
	if len(projects) == 0 {
		printInfo("No projects found")
		printNextStep("Create one", "flowdeck serve")
		return nil
	}

	model := NewProjectListModel(projects)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run project browser: %w", err)
	}

	result, ok := final.(ProjectListModel)
	if !ok || result.Selected == nil {
		return nil
	}

	// The list carries metadata only; fetch the full diagram.
	project, err := st.Get(ctx, result.Selected.Project.ID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	opts := c.pipelineOptions()
	if opts.Orientation == "" {
		opts.Orientation = project.Diagram.Orientation
	}
	laid, err := pipeline.ComputeLayout(project.Diagram, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	printNewline()
	printKeyValue("Project", project.Name)
	printKeyValue("ID", project.ID)
	printKeyValue("Nodes", fmt.Sprintf("%d", len(project.Diagram.Nodes)))
	printKeyValue("Edges", fmt.Sprintf("%d", len(project.Diagram.Edges)))
	printKeyValue("Layers", fmt.Sprintf("%d", len(laid.Layers)))
	printKeyValue("Crossings", fmt.Sprintf("%d", laid.Crossings))
	printNewline()
	printNextStep("Render", "flowdeck render <diagram.json> -f svg")

	return nil
}
