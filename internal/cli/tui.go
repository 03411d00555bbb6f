package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"catwalk/pkg/catgraph"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// browserModel - Interactive category tree navigation
// =============================================================================

// browserModel is the bubbletea model for browsing a category tree. The
// model keeps a trail of categories from the initial root down to the one
// whose children are currently listed; enter descends into the selected
// subcategory and backspace ascends.
type browserModel struct {
	g        *catgraph.Graph
	trail    []string
	children []string
	cursor   int
	height   int
	offset   int
}

// newBrowserModel creates a browser positioned at root.
func newBrowserModel(g *catgraph.Graph, root string) browserModel {
	return browserModel{
		g:        g,
		trail:    []string{root},
		children: g.SortedChildren(root),
		height:   15,
	}
}

// current returns the category whose children are listed.
func (m browserModel) current() string {
	return m.trail[len(m.trail)-1]
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.children)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", "right", "l":
			if m.cursor < len(m.children) {
				child := m.children[m.cursor]
				if len(m.g.Children[child]) == 0 {
					return m, nil
				}
				m.trail = append(m.trail, child)
				m.children = m.g.SortedChildren(child)
				m.cursor = 0
				m.offset = 0
			}
		case "backspace", "left", "h":
			if len(m.trail) > 1 {
				leaving := m.current()
				m.trail = m.trail[:len(m.trail)-1]
				m.children = m.g.SortedChildren(m.current())
				m.cursor = indexOf(m.children, leaving)
				m.offset = 0
				if m.cursor >= m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Browse Categories"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ descend  ⌫ ascend  q quit"))
	b.WriteString("\n")
	b.WriteString(StyleValue.Render(strings.Join(m.trail, " > ")))
	b.WriteString("\n\n")

	if len(m.children) == 0 {
		b.WriteString(listDimStyle.Render("  (no subcategories)"))
		return b.String()
	}

	end := m.offset + m.height
	if end > len(m.children) {
		end = len(m.children)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		child := m.children[i]
		info := m.g.Info[child]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		marker := ""
		if len(m.g.Children[child]) > 0 {
			marker = "+"
		}

		rows = append(rows, []string{
			cursor,
			child,
			fmt.Sprintf("%d", info.Pages),
			fmt.Sprintf("%d", info.Subcats),
			marker,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Category", "Pages", "Subcats", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.offset+row == m.cursor {
				return listSelectedStyle
			}
			if col >= 2 {
				return StyleDim
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.children))))

	return b.String()
}

func indexOf(s []string, v string) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return 0
}
