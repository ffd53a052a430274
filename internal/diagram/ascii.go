package diagram

import (
	"fmt"
	"strings"
)

// DrawASCIIProfile creates an ASCII gable-end elevation of the building
func DrawASCIIProfile(data ProfileData) string {
	var sb strings.Builder

	// Scale factors for ASCII drawing
	widthChars := 48
	heightChars := 14

	if data.Width <= 0 || data.RidgeY <= 0 {
		return ""
	}

	ridgeRow := 0
	eaveRow := heightChars - 1 - int(data.EaveY/data.RidgeY*float64(heightChars-1))
	if eaveRow > heightChars-1 {
		eaveRow = heightChars - 1
	}

	sb.WriteString("\n")
	sb.WriteString("  GABLE END ELEVATION\n")
	sb.WriteString("  ───────────────────\n\n")

	for i := 0; i < heightChars; i++ {
		// Height at the middle of this row
		level := data.RidgeY * (float64(heightChars-i) - 0.5) / float64(heightChars)

		row := make([]rune, widthChars)
		for c := range row {
			x := data.Width * (float64(c) + 0.5) / float64(widthChars)
			top := data.HeightAt(x)
			switch {
			case level > top:
				row[c] = ' '
			case level > data.EaveY:
				row[c] = '▓'
			default:
				row[c] = '░'
			}
		}

		sb.WriteString("  │")
		sb.WriteString(string(row))
		sb.WriteString("│")

		switch i {
		case ridgeRow:
			sb.WriteString(fmt.Sprintf(" ◄─ ridge %.2f m", data.RidgeY))
		case eaveRow:
			sb.WriteString(fmt.Sprintf(" ◄─ eave %.2f m", data.EaveY))
		}
		sb.WriteString("\n")
	}

	base := []rune(strings.Repeat("─", widthChars))
	if data.StepX > 0 && data.StepX < data.Width {
		base[int(data.StepX/data.Width*float64(widthChars))] = '┴'
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", string(base)))
	label := fmt.Sprintf("width %.2f m", data.Width)
	pad := (widthChars + 2 - len(label)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(fmt.Sprintf("  %s%s\n", strings.Repeat(" ", pad), label))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Wall below eave height\n")
	sb.WriteString("  ▓▓▓ = Gable triangle (side area)\n")
	if data.StepX > 0 {
		sb.WriteString(fmt.Sprintf("  ┴   = Level step at %.2f m\n", data.StepX))
	}
	if data.EaveY <= 0 {
		sb.WriteString(fmt.Sprintf("  Eave height %.2f m is at or below ground level\n", data.EaveY))
	}
	if area, _, _ := data.AreaAndCentroid(); area > 0 {
		sb.WriteString(fmt.Sprintf("  Gable end area: %.2f m²\n", area))
	}
	for i, s := range data.Result.Slopes {
		sb.WriteString(fmt.Sprintf("  Slope %d: run %.2f m, %.2f → %.2f m, surface %.2f m\n",
			i+1, s.Width, s.MaxHeight, s.MinHeight, s.Length))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", padRight(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// padRight pads by rune count so that m² and arrows line up
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
