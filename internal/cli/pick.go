package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hallway/pkg/floor"
	"github.com/matzehuels/hallway/pkg/pipeline"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// HallPickerModel is the bubbletea model for choosing a start hall and
// waypoints.
type HallPickerModel struct {
	Plan      *floor.Plan
	Cursor    int
	Offset    int
	Height    int
	Start     int // index into Plan.Halls, -1 when unset
	Waypoints map[int]bool
	Confirmed bool
	Message   string
}

// NewHallPickerModel starts with the plan's own start and waypoints
// selected.
func NewHallPickerModel(p *floor.Plan) HallPickerModel {
	m := HallPickerModel{Plan: p, Height: 15, Start: -1, Waypoints: make(map[int]bool)}
	for i, h := range p.Halls {
		if h.ID == p.Start {
			m.Start = i
		}
		for _, w := range p.Waypoints {
			if h.ID == w {
				m.Waypoints[i] = true
			}
		}
	}
	return m
}

// StartID returns the chosen start hall.
func (m HallPickerModel) StartID() string {
	if m.Start < 0 {
		return ""
	}
	return string(m.Plan.Halls[m.Start].ID)
}

// Visit returns the chosen waypoints in hall order.
func (m HallPickerModel) Visit() []string {
	visit := []string{}
	for i, h := range m.Plan.Halls {
		if m.Waypoints[i] {
			visit = append(visit, string(h.ID))
		}
	}
	return visit
}

func (m HallPickerModel) Init() tea.Cmd {
	return nil
}

func (m HallPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.Message = ""
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
			if m.Cursor < len(m.Plan.Halls)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "x":
			m.Waypoints[m.Cursor] = !m.Waypoints[m.Cursor]
		case "s":
			m.Start = m.Cursor
		case "c":
			clear(m.Waypoints)
		case "enter":
			if m.Start < 0 {
				m.Message = "choose a start hall with s first"
				return m, nil
			}
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m HallPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Plan a walk on " + m.Plan.DisplayName()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  s start  space waypoint  c clear  ⏎ route  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Plan.Halls))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		h := m.Plan.Halls[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		role := ""
		switch {
		case i == m.Start:
			role = "start"
		case m.Waypoints[i]:
			role = "visit"
		}
		rows = append(rows, []string{cursor, string(h.ID), h.Name, role, strconv.Itoa(len(m.Plan.Corridors[h.ID]))})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Hall", "Name", "Role", "Corridors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case idx == m.Start:
				return StyleTitle
			case m.Waypoints[idx]:
				return StyleWaypoint
			}
			return listDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d waypoint(s)", m.Cursor+1, len(m.Plan.Halls), len(m.Visit()))))
	if m.Message != "" {
		b.WriteString("\n  " + StyleWarning.Render(m.Message))
	}
	return b.String()
}

func (c *CLI) pickCommand() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "pick FILE",
		Short: "Choose the start hall and waypoints interactively, then route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPick(cmd, args[0], &opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func (c *CLI) runPick(cmd *cobra.Command, path string, opts *routeOpts) error {
	p, err := loadFloor(path, opts.floor)
	if err != nil {
		return err
	}
	if len(p.Halls) == 0 {
		printWarning("%s has no halls", p.DisplayName())
		return nil
	}

	final, err := tea.NewProgram(NewHallPickerModel(p), tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("picker: %w", err)
	}
	m := final.(HallPickerModel)
	if !m.Confirmed {
		printInfo("Cancelled")
		return nil
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	res, err := runner.Route(cmd.Context(), p, pipeline.Options{
		Start:   m.StartID(),
		Visit:   m.Visit(),
		Refresh: opts.refresh,
		Timeout: opts.timeout,
	})
	if err != nil {
		return err
	}
	printItinerary(res.Itinerary)
	printStats(res.Stats.HallCount, res.Stats.CorridorCount, res.CacheInfo.RouteHit)
	printNextStep("Draw it", fmt.Sprintf("hallway render %s --start %s --visit %s", path, m.StartID(), strings.Join(m.Visit(), ",")))
	return nil
}
