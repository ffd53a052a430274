package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gohouse/internal/config"
	"github.com/alexiusacademia/gohouse/internal/logger"
	"github.com/alexiusacademia/gohouse/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Global options
	envFile   string
	logLevel  string
	logFormat string

	// Loaded before any subcommand runs
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gohouse",
	Short: "Frame House Geometry Calculator",
	Long: `gohouse - Go Frame House Calculator

A CLI tool that computes the geometry of rectangular frame houses
with single-slope, double-slope (gable) or multi-level roofs.

This tool calculates:
  - Roof slope widths, heights and sloped lengths
  - Roof surface area with and without eave overhang
  - Wall areas including gable triangles
  - Floor area

All dimensions are in meters.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded

		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if logFormat != "" {
			cfg.LogFormat = logFormat
		}
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger.Setup(cfg.LogFormat, os.Stderr)
		logger.SetLevel(level)
		logger.Debug("configuration loaded", "env_file", envFile, "overhang", cfg.Overhang, "output_dir", cfg.OutputDir)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gohouse v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Frame House Calculator                               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the geometry of rectangular frame houses.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Single-slope, gable and multi-level roofs")
		fmt.Println("    • Slope dimensions, roof, wall and floor areas")
		fmt.Println("    • Gable-end diagrams (ASCII, PNG, SVG, PDF)")
		fmt.Println("    • Project files in JSON, YAML or Excel")
		fmt.Println("    • PDF and Excel calculation reports")
		fmt.Println("    • HTTP JSON API")
		fmt.Println()
		fmt.Println("  Use 'gohouse --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Environment file with GOHOUSE_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
}
