package diagram

import (
	"fmt"
	"strings"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"
)

// DrawASCIISlope renders the slope drawing for a terminal.
func DrawASCIISlope(g drainage.SchemeGeometry) string {
	var sb strings.Builder

	const cols = 40
	// the drop is exaggerated so any slope shows at least one step
	rows := 2
	if g.SlopeMMPerM >= drainage.RecommendedSlope*1000 {
		rows = 4
	}

	sb.WriteString(fmt.Sprintf("  Slope %.1f mm/m, angle %.2f°\n", g.SlopeMMPerM, g.AngleDeg))
	sb.WriteString("  " + strings.Repeat("-", cols) + "\n")
	step := cols / rows
	for r := 0; r < rows; r++ {
		sb.WriteString("  " + strings.Repeat(" ", r*step) + strings.Repeat("=", step))
		if r == rows-1 {
			sb.WriteString(fmt.Sprintf("  h = %.0f mm", g.DropMM))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  " + strings.Repeat(" ", cols) + "||\n")
	sb.WriteString(fmt.Sprintf("  L = %g m, D%d\n", g.RunLengthM, g.DiameterMM))
	return sb.String()
}

// DrawASCIIPlan marks drain points on a character grid of the house footprint.
func DrawASCIIPlan(points []plan.DrainPoint) string {
	const cols, rows = 40, 10

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	for i, pt := range plan.Normalize(points) {
		c := min(max(int(pt.X/plan.MaxCoord*(cols-1)), 0), cols-1)
		r := min(max(int(pt.Y/plan.MaxCoord*(rows-1)), 0), rows-1)
		mark := '*'
		if i < 9 {
			mark = rune('1' + i)
		}
		grid[r][c] = mark
	}

	var sb strings.Builder
	sb.WriteString("  +" + strings.Repeat("-", cols) + "+\n")
	for _, line := range grid {
		sb.WriteString("  |" + string(line) + "|\n")
	}
	sb.WriteString("  +" + strings.Repeat("-", cols) + "+\n")
	sb.WriteString(fmt.Sprintf("  Downpipes: %d placed, %d counted\n", plan.Count(points), plan.EffectiveCount(points)))
	return sb.String()
}
