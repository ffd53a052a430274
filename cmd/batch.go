package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohouse/internal/building"
	"github.com/alexiusacademia/gohouse/internal/logger"
	"github.com/alexiusacademia/gohouse/internal/report"
	"github.com/spf13/cobra"
)

var (
	batchFile    string
	batchDetails bool
	batchPDF     string
	batchXLSX    string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate every house in a project file",
	Long: `Calculate all buildings defined in a JSON, YAML or Excel file.

Example YAML file structure:
name: Lake village
author: J. Doe
buildings:
  - name: Guest house
    width: 6
    length: 8
    roof_type: single
  - name: Main house
    description: Two bedrooms, kitchen and porch
    width: 8
    length: 10
    roof_type: multi
    has_overhang: true

Excel files use the first sheet with a header row followed by
one building per row: name | width | length | roof_type | overhang | description
(description is optional)

Examples:
  gohouse batch --file village.yaml
  gohouse batch -f village.xlsx --pdf village.pdf --xlsx results.xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Path to project file (.json, .yaml, .xlsx) [required]")
	batchCmd.MarkFlagRequired("file")

	batchCmd.Flags().BoolVar(&batchDetails, "details", false, "Print the full calculation sheet of every building")
	batchCmd.Flags().StringVar(&batchPDF, "pdf", "", "Write a PDF report for the project")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "Write an Excel workbook for the project")
}

func runBatch(cmd *cobra.Command, args []string) error {
	project, err := building.LoadFromFile(batchFile)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}
	logger.Info("project loaded", "name", project.Name, "buildings", len(project.Buildings))

	author := project.Author
	if author == "" {
		author = cfg.ReportAuthor
	}
	rep := report.New("", project.Name, author)
	for _, b := range project.Buildings {
		if err := rep.AddBuilding(b); err != nil {
			return err
		}
		logger.Trace("building added", "name", b.Name, "roof_type", b.RoofType, "width", b.Width, "length", b.Length)
	}

	if batchDetails {
		for _, e := range rep.Entries {
			warnInput(e.Input, e.Result)
			printResult(e.Name, e.Description, e.Input, e.Result)
		}
	}

	fmt.Println()
	fmt.Printf("PROJECT: %s\n", project.Name)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Building\tRoof\tW x L (m)\tWalls (m²)\tRoof (m²)\tFloor (m²)\n")
	fmt.Fprintf(w, "  ────────\t────\t─────────\t──────────\t─────────\t──────────\n")
	for _, e := range rep.Entries {
		fmt.Fprintf(w, "  %s\t%s\t%.2f x %.2f\t%.2f\t%.2f\t%.2f\n",
			e.Name, e.Input.RoofType, e.Input.Width, e.Input.Length,
			e.Result.Totals.Walls, e.Result.Totals.Roof, e.Result.Totals.Floor)
	}
	t := rep.Totals()
	fmt.Fprintf(w, "  TOTAL\t\t\t%.2f\t%.2f\t%.2f\n", t.Walls, t.Roof, t.Floor)
	w.Flush()
	fmt.Println()

	return writeReports(rep, batchPDF, batchXLSX)
}
