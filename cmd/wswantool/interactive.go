package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wondertools/wswantool/config"
	"github.com/wondertools/wswantool/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	registerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	cfg     *config.Config
	n       *layout.Normalized
	regions []windowRegion
	table   table.Model
}

type windowRegion struct {
	window string
	region layout.Region
}

func newInspectorModel(cfg *config.Config, n *layout.Normalized) *inspectorModel {
	regions := make([]windowRegion, 0, len(n.IRAM)+len(n.SRAM))
	for _, r := range n.IRAM {
		regions = append(regions, windowRegion{window: "iram", region: r})
	}
	for _, r := range n.SRAM {
		regions = append(regions, windowRegion{window: "sram", region: r})
	}

	columns := []table.Column{
		{Title: "Window", Width: 6},
		{Title: "Region", Width: 16},
		{Title: "Start", Width: 8},
		{Title: "End", Width: 8},
		{Title: "Size", Width: 8},
	}
	rows := make([]table.Row, 0, len(regions))
	for _, wr := range regions {
		rows = append(rows, table.Row{
			wr.window,
			wr.region.Name,
			fmt.Sprintf("0x%05X", wr.region.Start),
			fmt.Sprintf("0x%05X", wr.region.End),
			fmt.Sprintf("%d", wr.region.Size()),
		})
	}

	height := len(rows) + 1
	if height > 12 {
		height = 12
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	t.SetStyles(styles)

	return &inspectorModel{cfg: cfg, n: n, regions: regions, table: t}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	s := titleStyle.Render("wswantool memory map") + "\n\n"
	s += registerStyle.Render(fmt.Sprintf("model %-8s DS=0x%04X SS=0x%04X SP=0x%04X",
		m.n.Model, m.n.DS, m.n.SS, m.n.SP)) + "\n"
	s += registerStyle.Render(fmt.Sprintf("ROM 0x%X + 0x%X", m.cfg.ROMStart, m.cfg.ROMLength)) + "\n\n"
	s += m.table.View() + "\n"

	if len(m.regions) > 0 {
		idx := m.table.Cursor()
		if idx >= 0 && idx < len(m.regions) {
			r := m.regions[idx].region
			line := fmt.Sprintf("%s: %d bytes in segment 0x%04X", r.Name, r.Size(), r.Segment()>>4)
			if r.Name == layout.HeapName {
				line += " (split into .data/.bss/heap)"
			}
			s += detailStyle.Render(line) + "\n"
		}
	}

	s += "\n" + helpStyle.Render("up/down: select  q: quit") + "\n"
	return s
}

func runInspector(cfg *config.Config, n *layout.Normalized) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive inspection needs a terminal")
	}
	_, err := tea.NewProgram(newInspectorModel(cfg, n), tea.WithAltScreen()).Run()
	return err
}
