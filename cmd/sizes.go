package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gohouse/internal/presets"
	"github.com/alexiusacademia/gohouse/internal/roof"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	sizesType   string
	sizesChart  bool
	sizesLength float64
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "List the catalogue house sizes for each roof type",
	Long: `List the standard widths and lengths offered for each roof type.

Other dimensions can still be calculated; they are reported with a
warning.

Examples:
  gohouse sizes
  gohouse sizes --type multi
  gohouse sizes --chart --length 10`,
	RunE: runSizes,
}

func init() {
	rootCmd.AddCommand(sizesCmd)

	sizesCmd.Flags().StringVarP(&sizesType, "type", "t", "", "Only list sizes for this roof type")
	sizesCmd.Flags().BoolVar(&sizesChart, "chart", false, "Plot roof area against catalogue width")
	sizesCmd.Flags().Float64Var(&sizesLength, "length", 8, "Building length used for --chart (m)")
}

func runSizes(cmd *cobra.Command, args []string) error {
	options := presets.Sizes
	if sizesType != "" {
		rt, err := roof.ParseRoofType(sizesType)
		if err != nil {
			return err
		}
		opts, _ := presets.For(rt)
		options = []presets.SizeOptions{opts}
	}

	fmt.Println()
	fmt.Println("CATALOGUE SIZES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Roof type\tWidths (m)\tLengths (m)\n")
	fmt.Fprintf(w, "  ─────────\t──────────\t───────────\n")
	for _, opts := range options {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", opts.RoofType.Label(), joinSizes(opts.Widths), joinSizes(opts.Lengths))
	}
	w.Flush()
	fmt.Println()

	if sizesChart {
		for _, opts := range options {
			fmt.Print(roofAreaChart(opts.RoofType, sizesLength, cfg.Overhang))
		}
	}
	return nil
}

// roofAreaChart plots roof surface over the catalogue widths of a roof type
func roofAreaChart(rt roof.RoofType, length float64, overhang bool) string {
	widths, areas := presets.RoofAreaByWidth(rt, length, overhang)
	if len(areas) < 2 {
		return ""
	}
	caption := fmt.Sprintf("%s roof area (m²), widths %s m, length %s m",
		rt.Label(), joinSizes(widths), strconv.FormatFloat(length, 'f', -1, 64))
	graph := asciigraph.Plot(areas,
		asciigraph.Height(10),
		asciigraph.Width(len(areas)*6),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	return graph + "\n\n"
}

func joinSizes(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
