package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	hio "github.com/matzehuels/hallway/pkg/io"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // warnings, waypoints
	colorRed    = lipgloss.Color("167") // errors, route
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWaypoint  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, dimmed line. Multi-line messages keep the
// indent on every line.
func printDetail(format string, args ...any) {
	for _, line := range strings.Split(fmt.Sprintf(format, args...), "\n") {
		fmt.Println("  " + StyleDim.Render(line))
	}
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// printStats prints floor size and cache status on one line.
func printStats(halls, corridors int, cached bool) {
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d halls", halls)),
		StyleDim.Render(fmt.Sprintf("%d corridors", corridors)),
		statusStyle.Render(status),
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// formatRoute joins hall ids with arrows, highlighting waypoints.
func formatRoute(route []hio.RouteHall, order []string) string {
	parts := make([]string, len(route))
	for i, h := range route {
		switch {
		case i == 0:
			parts[i] = StyleTitle.Render(h.ID)
		case contains(order, h.ID):
			parts[i] = StyleWaypoint.Render(h.ID)
		default:
			parts[i] = StyleValue.Render(h.ID)
		}
	}
	return strings.Join(parts, StyleDim.Render(" "+iconArrow+" "))
}

// printItinerary prints the walk followed by a table of its legs.
func printItinerary(it hio.Itinerary) {
	name := it.Floor
	if name == "" {
		name = "floor"
	}
	fmt.Println(StyleTitle.Render(name))
	printKeyValue("start", it.Start)
	printKeyValue("waypoints", strings.Join(it.Order, ", "))
	printKeyValue("distance", StyleNumber.Render(strconv.FormatInt(it.Distance, 10)))
	fmt.Println()
	fmt.Println("  " + formatRoute(it.Route, it.Order))

	if len(it.Legs) == 0 {
		return
	}
	rows := make([][]string, len(it.Legs))
	for i, l := range it.Legs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			l.From,
			l.To,
			strconv.FormatInt(l.Distance, 10),
			strings.Join(l.Path, " "+iconArrow+" "),
		}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "From", "To", "Steps", "Path").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return base.Inherit(headerStyle)
			case col == 2:
				return base.Foreground(colorYellow)
			case col == 3:
				return base.Foreground(colorCyan)
			}
			return base
		})
	fmt.Println()
	fmt.Println(t.Render())
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}

func printNewline() {
	fmt.Println()
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + StyleHighlight.Render(cmd))
}
