package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"gasplit/config"
	"gasplit/internal/adapter/emitter"
	"gasplit/internal/adapter/splitter"
	"gasplit/internal/adapter/store"
	"gasplit/internal/port"
	"gasplit/internal/usecase"
)

var (
	splitOutDir      string
	splitCatalogFile string
	splitNoHistory   bool
)

var splitCmd = &cobra.Command{
	Use:   "split [source]",
	Short: "Split a source file into per-category modules",
	Long: `Split classifies every top-level declaration of the source file into
the first matching catalog category and writes one module file per
non-empty category. Lines that match no category are listed for manual
review; the run always completes unless the source cannot be read.

Examples:
  gasplit split                       # Source and output from config
  gasplit split gs_torx_main.gs -o src`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().StringVarP(&splitOutDir, "out", "o", "", "output directory (default from config)")
	splitCmd.Flags().StringVarP(&splitCatalogFile, "catalog", "c", "", "catalog YAML (default: built-in catalog)")
	splitCmd.Flags().BoolVar(&splitNoHistory, "no-history", false, "do not record this run in history")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	source := cfg.Split.Source
	if len(args) > 0 {
		source = args[0]
	}
	if !filepath.IsAbs(source) {
		source = filepath.Join(rootDir, source)
	}

	outDir := cfg.Split.OutputDir
	if splitOutDir != "" {
		outDir = splitOutDir
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(rootDir, outDir)
	}

	catalogFile := cfg.Split.Catalog
	if splitCatalogFile != "" {
		catalogFile = splitCatalogFile
	}
	defs, err := config.LoadCatalog(catalogFile)
	if err != nil {
		return err
	}
	catalog, err := splitter.NewCatalog(defs)
	if err != nil {
		return err
	}

	var runStore port.RunStore
	if cfg.History.Enabled && !splitNoHistory {
		if err := config.EnsureStateDir(rootDir); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
		st, err := store.NewBoltStore(config.HistoryDBPath(rootDir))
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer st.Close()
		runStore = st
	}

	fmt.Printf("Reading %s...\n", source)

	uc := usecase.NewSplitUseCase(catalog, emitter.NewModuleEmitter(outDir), runStore)
	result, err := uc.Split(source)
	if err != nil {
		return err
	}

	for _, m := range result.Modules {
		fmt.Printf("Writing %s... (%d units, %d lines)\n", filepath.Join(outDir, m.File), m.Units, m.Lines)
	}

	report := result.Report
	if report.Summary.TruncatedUnits > 0 {
		fmt.Fprintf(os.Stderr, "\nWarning: %d declaration(s) were cut short at end of input (unbalanced braces)\n", report.Summary.TruncatedUnits)
	}

	if len(report.Unmatched) > 0 {
		fmt.Println("\nUnmatched content (needs manual review):")
		shown := 0
		for _, sl := range report.Unmatched {
			if trimmed := trimDisplay(sl.Text, 80); trimmed != "" {
				fmt.Printf("  Line %d: %s\n", sl.Index+1, trimmed)
				shown++
			}
			if shown >= 20 {
				break
			}
		}
		if rest := len(report.Unmatched) - shown; rest > 0 {
			fmt.Printf("  ... and %d more lines\n", rest)
		}
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	fmt.Printf("\nSplit complete. Modules created in %s\n", outDir)
	fmt.Printf("  Total lines:    %d\n", report.Summary.TotalLines)
	fmt.Printf("  Assigned:       %d\n", report.Summary.Consumed)
	fmt.Printf("  Header:         %d\n", report.Summary.Header)
	fmt.Printf("  Unmatched:      %d\n", report.Summary.Unmatched)
	return nil
}
