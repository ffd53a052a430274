package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gohouse/internal/diagram"
	"github.com/alexiusacademia/gohouse/internal/logger"
	"github.com/alexiusacademia/gohouse/internal/presets"
	"github.com/alexiusacademia/gohouse/internal/report"
	"github.com/alexiusacademia/gohouse/internal/roof"
	"github.com/spf13/cobra"
)

var (
	// Building inputs
	calcType     string
	calcWidth    float64
	calcLength   float64
	calcOverhang bool

	// Output options
	calcShowDiagram bool
	calcExportFile  string
	calcPDF         string
	calcXLSX        string
	calcJSON        bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate roof, wall and floor geometry of a house",
	Long: `Calculate the roof slopes, wall areas and floor area of a
rectangular frame house.

Roof types:
  single  - one slope over the full width
  double  - symmetric gable roof (alias: gable)
  multi   - two single slopes at different heights (alias: split)

The width is the dimension the slopes run across, the length runs
along the ridge. Both must be at least 1 m.

Examples:
  # Single-slope house 6 x 8 m
  gohouse calc --type single --width 6 --length 8

  # Multi-level roof with eave overhang and a diagram
  gohouse calc -t multi -w 8 -l 10 --overhang --diagram

  # Export a PDF calculation sheet and a gable-end drawing
  gohouse calc -t double -w 8 -l 10 --pdf house.pdf -o house.png`,
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	// Building flags
	calcCmd.Flags().StringVarP(&calcType, "type", "t", "single", "Roof type (single, double, multi)")
	calcCmd.Flags().Float64VarP(&calcWidth, "width", "w", 0, "House width across the slopes (m) [required]")
	calcCmd.Flags().Float64VarP(&calcLength, "length", "l", 0, "House length along the ridge (m) [required]")
	calcCmd.Flags().BoolVar(&calcOverhang, "overhang", false, "Add a 0.3 m eave overhang at both ends (default from GOHOUSE_OVERHANG)")

	// Mark required flags
	calcCmd.MarkFlagRequired("width")
	calcCmd.MarkFlagRequired("length")

	// Output options
	calcCmd.Flags().BoolVar(&calcShowDiagram, "diagram", false, "Show ASCII gable-end diagram")
	calcCmd.Flags().StringVarP(&calcExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	calcCmd.Flags().StringVar(&calcPDF, "pdf", "", "Write a PDF calculation sheet")
	calcCmd.Flags().StringVar(&calcXLSX, "xlsx", "", "Write an Excel workbook with the results")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Print the result as JSON")
}

func runCalc(cmd *cobra.Command, args []string) error {
	rt, err := roof.ParseRoofType(calcType)
	if err != nil {
		return err
	}

	overhang := cfg.Overhang
	if cmd.Flags().Changed("overhang") {
		overhang = calcOverhang
	}

	in := roof.BuildingInput{
		Width:       calcWidth,
		Length:      calcLength,
		RoofType:    rt,
		HasOverhang: overhang,
	}

	// Run calculation
	res, err := roof.Compute(in)
	if err != nil {
		return err
	}
	logger.Debug("calculated", "roof_type", rt, "width", in.Width, "length", in.Length, "overhang", overhang)
	warnInput(in, res)

	if calcJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printResult("", "", in, res)
	}

	profile := diagram.NewProfileData(rt, res)
	if calcShowDiagram && !calcJSON {
		fmt.Print(diagram.DrawASCIIProfile(profile))
		fmt.Println()
	}

	if calcExportFile != "" {
		path, err := diagram.ExportProfileDiagram(profile, outputPath(calcExportFile))
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		logger.Info("diagram exported", "file", path)
	}

	if calcPDF != "" || calcXLSX != "" {
		rep := report.New("", "", cfg.ReportAuthor)
		name := fmt.Sprintf("%s house %.2f x %.2f m", rt.Label(), in.Width, in.Length)
		if err := rep.Add(name, in); err != nil {
			return err
		}
		if err := writeReports(rep, calcPDF, calcXLSX); err != nil {
			return err
		}
	}

	return nil
}

// warnInput logs inputs that compute fine but deserve attention
func warnInput(in roof.BuildingInput, res roof.Result) {
	if !presets.IsStandard(in) {
		logger.Warn("dimensions are not a catalogue size", "roof_type", in.RoofType, "width", in.Width, "length", in.Length)
	}
	for i, s := range res.Slopes {
		if s.MinHeight <= 0 {
			logger.Warn("non-positive eave height", "slope", i+1, "min_height", s.MinHeight)
		}
	}
}

// outputPath places relative file names under the configured output directory
func outputPath(name string) string {
	if filepath.IsAbs(name) || cfg.OutputDir == "" || cfg.OutputDir == "." {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

func writeReports(rep *report.Report, pdfFile, xlsxFile string) error {
	type target struct {
		file  string
		write func(*report.Report, *os.File) error
	}
	targets := []target{
		{pdfFile, func(r *report.Report, f *os.File) error { return r.WritePDF(f) }},
		{xlsxFile, func(r *report.Report, f *os.File) error { return r.WriteXLSX(f) }},
	}

	for _, t := range targets {
		if t.file == "" {
			continue
		}
		path := outputPath(t.file)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := t.write(rep, f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("report written", "file", path, "report_id", rep.ID)
	}
	return nil
}
