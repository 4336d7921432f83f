package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/planegraph/pkg/components"
	"github.com/matzehuels/planegraph/pkg/graph"
	"github.com/matzehuels/planegraph/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)

	styleFree  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	styleKinds = map[components.Kind]lipgloss.Style{
		components.Isolated: lipgloss.NewStyle().Foreground(colorGray),
		components.Path:     lipgloss.NewStyle().Foreground(colorGreen),
		components.Other:    lipgloss.NewStyle().Foreground(colorYellow),
	}
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints graph statistics on a single line.
func printStats(vertexCount, edgeCount int, cached bool) {
	parts := []string{
		fmt.Sprintf("%d vertices", vertexCount),
		fmt.Sprintf("%d edges", edgeCount),
	}

	status := iconFresh
	statusStyle := styleComputed
	if cached {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Println(line)
}

// printAnalysis prints the free edge and component counts of an analysis.
func printAnalysis(a pipeline.Analysis) {
	printKeyValue("free edges", StyleNumber.Render(strconv.Itoa(a.Free.Len())))
	printKeyValue("components", StyleNumber.Render(strconv.Itoa(a.Summary.Components)))
	printKeyValue("isolated", strconv.Itoa(a.Summary.Isolated))
	printKeyValue("paths", strconv.Itoa(a.Summary.Paths))
	printKeyValue("other", strconv.Itoa(a.Summary.Other))
	printKeyValue("largest", strconv.Itoa(a.Summary.Largest))
}

// =============================================================================
// Tables
// =============================================================================

// maxTableVertices bounds how many vertex names a table cell lists.
const maxTableVertices = 8

// componentTable renders one row per component: its index, kind, size and
// the first few vertices. Path members are listed end to end.
func componentTable(g *graph.Graph, a pipeline.Analysis) string {
	rows := make([][]string, len(a.Components))
	for i, c := range a.Components {
		members := c.Sorted()
		if a.Kinds[i] == components.Path {
			members = components.PathOrder(g, c)
		}
		rows[i] = []string{
			strconv.Itoa(i),
			a.Kinds[i].String(),
			strconv.Itoa(len(c)),
			vertexList(g, members),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Size", "Vertices").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 && row >= 0 && row < len(a.Kinds) {
				return styleKinds[a.Kinds[row]].Padding(0, 1)
			}
			return cellStyle
		}).
		String()
}

// vertexList joins vertex names, eliding after maxTableVertices.
func vertexList(g *graph.Graph, ids []graph.VertexID) string {
	names := make([]string, 0, min(len(ids), maxTableVertices)+1)
	for i, id := range ids {
		if i == maxTableVertices {
			names = append(names, fmt.Sprintf("… +%d", len(ids)-maxTableVertices))
			break
		}
		names = append(names, vertexName(g, id))
	}
	return strings.Join(names, " ")
}

// printFreeEdges lists the free edges of g by their endpoint names.
func printFreeEdges(g *graph.Graph, a pipeline.Analysis) {
	for _, id := range a.Free.Sorted() {
		e, ok := g.Edge(id)
		if !ok {
			continue
		}
		fmt.Println("  " + styleFree.Render(iconArrow) + " " + edgeName(g, e))
	}
}

// edgeName describes an edge by its endpoints.
func edgeName(g *graph.Graph, e graph.Edge) string {
	sep := " - "
	if e.Directed {
		sep = " -> "
	}
	return vertexName(g, e.A) + sep + vertexName(g, e.B)
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
