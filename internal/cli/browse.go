package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iconclip/iconclip/pkg/catalog"
	"github.com/iconclip/iconclip/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive icon picker. Selecting an icon
// copies it to the clipboard with the configured style.
func (c *CLI) browseCommand() *cobra.Command {
	var flags styleFlags

	cmd := &cobra.Command{
		Use:   "browse [query]",
		Short: "Browse icons interactively and copy on select",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}

			runner, err := c.newRunner(flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			matches := runner.Catalog.Search(query)
			if len(matches) == 0 {
				printInfo("No icons match %q", query)
				return nil
			}

			model := newIconListModel(matches)
			final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}

			m := final.(iconListModel)
			if m.Selected == nil {
				return nil
			}

			result, err := runner.Execute(cmd.Context(), pipeline.Options{
				Pack:    m.Selected.Pack,
				Icon:    m.Selected.Icon,
				Style:   flags.style(),
				Formats: []string{flags.format},
				Copy:    true,
				Refresh: flags.refresh,
			})
			if err != nil {
				return err
			}
			printSuccess("Copied %s/%s as %s", m.Selected.Pack, m.Selected.Icon, result.Copied)
			return nil
		},
	}

	flags.register(cmd, c.Config)
	return cmd
}

// iconListModel is the bubbletea model for interactive icon selection.
type iconListModel struct {
	Matches  []catalog.Match
	Cursor   int
	Offset   int
	Height   int
	Selected *catalog.Match
}

func newIconListModel(matches []catalog.Match) iconListModel {
	return iconListModel{
		Matches: matches,
		Height:  15,
	}
}

func (m iconListModel) Init() tea.Cmd {
	return nil
}

func (m iconListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Matches)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			match := m.Matches[m.Cursor]
			m.Selected = &match
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 5
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m iconListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Icon"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ copy  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Matches) {
		end = len(m.Matches)
	}

	for i := m.Offset; i < end; i++ {
		match := m.Matches[i]
		line := listDimStyle.Render(match.Pack+"/") + listNormalStyle.Render(match.Icon)
		if i == m.Cursor {
			line = listSelectedStyle.Render("▸ " + match.Pack + "/" + match.Icon)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
