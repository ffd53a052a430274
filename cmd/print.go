package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gohouse/internal/diagram"
	"github.com/alexiusacademia/gohouse/internal/roof"
)

// printResult writes the calculation sheet for one building to stdout
func printResult(name, description string, in roof.BuildingInput, res roof.Result) {
	title := strings.ToUpper(in.RoofType.Label()) + " ROOF HOUSE"
	if name != "" {
		title = strings.ToUpper(name)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	if description != "" {
		fmt.Printf("     %s\n", description)
	}
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	// Input summary
	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Roof type:\t%s\n", in.RoofType.Label())
	fmt.Fprintf(w, "  Width:\t%.2f m\n", in.Width)
	fmt.Fprintf(w, "  Length:\t%.2f m\n", in.Length)
	if in.HasOverhang {
		fmt.Fprintf(w, "  Eave overhang:\t%.2f m each end\n", roof.OverhangLength)
	} else {
		fmt.Fprintf(w, "  Eave overhang:\tnone\n")
	}
	w.Flush()
	fmt.Println()

	// Slopes
	fmt.Println("ROOF SLOPES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "  Parameter"
	rule := "  ─────────"
	for i := range res.Slopes {
		if len(res.Slopes) == 1 {
			header += "\tSlope"
		} else {
			header += fmt.Sprintf("\tSlope %d", i+1)
		}
		rule += "\t───────"
	}
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, rule)
	slopeLine(w, "Slope width", "%.2f m", res.Slopes, func(s roof.Slope) float64 { return s.Width })
	slopeLine(w, "Max height", "%.2f m", res.Slopes, func(s roof.Slope) float64 { return s.MaxHeight })
	slopeLine(w, "Min height", "%.2f m", res.Slopes, func(s roof.Slope) float64 { return s.MinHeight })
	slopeLine(w, "Slope length", "%.2f m", res.Slopes, func(s roof.Slope) float64 { return s.Length })
	if res.HasOverhang {
		slopeLine(w, "Top area (with overhang)", "%.2f m²", res.Slopes, func(s roof.Slope) float64 { return s.TopArea })
		slopeLine(w, "Top area (without overhang)", "%.2f m²", res.Slopes, func(s roof.Slope) float64 { return s.TopAreaWithoutOverhang })
	} else {
		slopeLine(w, "Top area", "%.2f m²", res.Slopes, func(s roof.Slope) float64 { return s.TopArea })
	}
	slopeLine(w, "Side area", "%.2f m²", res.Slopes, func(s roof.Slope) float64 { return s.SideArea })
	w.Flush()
	fmt.Println()

	// Walls
	fmt.Println("WALL AREAS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wall 1:\t%.2f m²\n", res.Walls.Wall1)
	fmt.Fprintf(w, "  Wall 2:\t%.2f m²\n", res.Walls.Wall2)
	fmt.Fprintf(w, "  Wall 3:\t%.2f m²\n", res.Walls.Wall3)
	fmt.Fprintf(w, "  Wall 4:\t%.2f m²\n", res.Walls.Wall4)
	w.Flush()
	fmt.Println()

	lines := []string{
		fmt.Sprintf("Walls:  %10.2f m²", res.Totals.Walls),
	}
	if res.HasOverhang {
		lines = append(lines,
			fmt.Sprintf("Roof (with overhang):    %10.2f m²", res.Totals.Roof),
			fmt.Sprintf("Roof (without overhang): %10.2f m²", res.Totals.RoofWithoutOverhang),
		)
	} else {
		lines = append(lines, fmt.Sprintf("Roof:   %10.2f m²", res.Totals.Roof))
	}
	lines = append(lines, fmt.Sprintf("Floor:  %10.2f m²", res.Totals.Floor))
	fmt.Print(diagram.DrawSummaryBox("TOTALS", lines))
	fmt.Println()
}

func slopeLine(w *tabwriter.Writer, label, format string, slopes []roof.Slope, value func(roof.Slope) float64) {
	fmt.Fprintf(w, "  %s:", label)
	for _, s := range slopes {
		fmt.Fprintf(w, "\t"+format, value(s))
	}
	fmt.Fprintln(w)
}
