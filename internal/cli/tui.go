package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ringgraph/pkg/interact"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TargetListModel - Interactive click target browser
// =============================================================================

// TargetListModel is the bubbletea model for browsing the click targets of
// a diagram. Enter activates the selected target through the registry.
type TargetListModel struct {
	Targets  []interact.Target
	Registry *interact.Registry
	Cursor   int
	Height   int
	Offset   int
	Status   string

	ctx context.Context
}

// NewTargetListModel creates a new target list model.
func NewTargetListModel(ctx context.Context, targets []interact.Target, reg *interact.Registry) TargetListModel {
	return TargetListModel{
		Targets:  targets,
		Registry: reg,
		Height:   15,
		ctx:      ctx,
	}
}

func (m TargetListModel) Init() tea.Cmd {
	return nil
}

func (m TargetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Targets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Targets) == 0 {
				return m, nil
			}
			t := m.Targets[m.Cursor]
			if err := m.Registry.Activate(m.ctx, t.Action); err != nil {
				m.Status = fmt.Sprintf("%s: %v", t.ID, err)
			} else {
				m.Status = fmt.Sprintf("%s activated %q", t.ID, t.Action)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TargetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Click Targets"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ activate  q quit"))
	b.WriteString("\n\n")

	if len(m.Targets) == 0 {
		b.WriteString(listDimStyle.Render("  no interactive elements"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Targets))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		t := m.Targets[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		tooltip := t.Tooltip
		if tooltip == "" {
			tooltip = "-"
		}
		rows = append(rows, []string{cursor, t.ID, string(t.Kind), t.Action, tooltip})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "Element", "Kind", "Action", "Tooltip").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 2 || col == 4 {
				return listDimStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Targets))))
	if m.Status != "" {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render("  " + m.Status))
	}

	return b.String()
}
