package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	designdiff "github.com/hellenic-development/design-diff"
	"github.com/hellenic-development/design-diff/pkg/compare"
	"github.com/hellenic-development/design-diff/pkg/server"
)

const version = "0.3.0"

var (
	figmaFile    string
	webFile      string
	outputFile   string
	configFile   string
	title        string
	baseFontSize float64
	asJSON       bool
	verbose      bool

	serveAddr string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "design-diff",
		Short: "Compare Figma design properties against a rendered web page",
		Long:  "A tool that normalizes design properties from a Figma export and a web page's computed styles, then reports property-by-property whether the implementation matches the design within configurable tolerances",
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two raw node files and write a report",
		Run:   runCompare,
	}
	compareCmd.Flags().StringVarP(&figmaFile, "figma", "f", "", "Figma raw-node JSON file (required)")
	compareCmd.Flags().StringVarP(&webFile, "web", "w", "", "Web raw-node JSON file (required)")
	compareCmd.Flags().StringVarP(&outputFile, "output", "o", "DESIGN_COMPARISON_REPORT.md", "Output report file")
	compareCmd.Flags().StringVarP(&configFile, "config", "c", "", "TOML file with per-domain tolerance overrides")
	compareCmd.Flags().StringVar(&title, "title", "", "Report title (default: derived from file names)")
	compareCmd.Flags().Float64Var(&baseFontSize, "base-font-size", 16, "Root font size used to resolve rem/em lengths")
	compareCmd.Flags().BoolVar(&asJSON, "json", false, "Write the raw result list as JSON instead of markdown")
	compareCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress messages")
	compareCmd.MarkFlagRequired("figma")
	compareCmd.MarkFlagRequired("web")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the comparison engine as an HTTP service",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug-level logging")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("design-diff version %s\n", version)
		},
	}

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runCompare(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Design Diff")
	cyan.Println("==============")
	cyan.Println()

	opts := designdiff.Options{
		FigmaFile:    figmaFile,
		WebFile:      webFile,
		Title:        title,
		BaseFontSize: baseFontSize,
	}
	if verbose {
		opts.Logger = &cliLogger{}
	}

	if configFile != "" {
		tolerance, err := compare.LoadToleranceConfig(configFile)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		opts.Tolerance = tolerance
	}

	result, err := designdiff.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Display comparison stats.
	summary := result.Summary
	cyan.Println("\n📊 Comparison Summary:")
	fmt.Printf("  • Properties compared: %d\n", summary.Total)
	fmt.Printf("  • Matches: %d\n", summary.Matches)
	fmt.Printf("  • Mismatches: %d\n", summary.Mismatches)
	fmt.Printf("  • Match rate: %.1f%%\n", summary.MatchRate*100)

	if len(summary.ByDomain) > 0 {
		fmt.Println("  • Mismatches by domain:")
		domains := make([]string, 0, len(summary.ByDomain))
		for d := range summary.ByDomain {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		for _, d := range domains {
			fmt.Printf("      %s: %d\n", d, summary.ByDomain[d])
		}
	}

	// Write report to file.
	green.Printf("\n💾 Writing to %s... ", outputFile)
	var data []byte
	if asJSON {
		data, err = json.MarshalIndent(result.Results, "", "  ")
		if err != nil {
			red.Printf("✗\nError: %v\n", err)
			os.Exit(1)
		}
	} else {
		data = []byte(result.Markdown)
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	if summary.Mismatches > 0 {
		red.Printf("\n⚠ %d propert(ies) deviate from the design — see %s\n\n", summary.Mismatches, outputFile)
		os.Exit(2)
	}
	green.Printf("\n✨ Implementation matches the design (%d properties checked)\n\n", summary.Total)
}

func runServe(cmd *cobra.Command, args []string) error {
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(serveAddr, logger).ListenAndServe(ctx)
}

// cliLogger implements designdiff.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
