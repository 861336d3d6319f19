package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// List styles
var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ProjectListModel - Interactive project selection
// =============================================================================

// ProjectSelection holds the result of the project selection.
type ProjectSelection struct {
	Project *diagram.Project
}

// ProjectListModel is the bubbletea model for interactive project browsing.
type ProjectListModel struct {
	Projects []diagram.Project
	Cursor   int
	Selected *ProjectSelection
	Height   int
	Offset   int
}

// NewProjectListModel creates a new project list model.
func NewProjectListModel(projects []diagram.Project) ProjectListModel {
	return ProjectListModel{
		Projects: projects,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m ProjectListModel) Init() tea.Cmd {
	return nil
}

func (m ProjectListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Projects)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			p := m.Projects[m.Cursor]
			m.Selected = &ProjectSelection{Project: &p}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ProjectListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Project"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Projects) {
		end = len(m.Projects)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Projects[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		orientation := string(p.Diagram.Orientation)
		if orientation == "" {
			orientation = "—"
		}

		rows = append(rows, []string{
			cursor,
			p.Name,
			shortID(p.ID),
			orientation,
			formatRelativeTime(p.UpdatedAt),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Project", "ID", "Orientation", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Projects) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col >= 2 {
				base = base.Foreground(colorDim)
				if isCurrent {
					base = base.Foreground(colorGray)
				}
			}
			if isCurrent {
				if col < 2 {
					return base.Foreground(colorCyan).Bold(true)
				}
				return base.Bold(true)
			}
			if col < 2 {
				return base.Foreground(colorWhite)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Projects))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// shortID truncates a project ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
