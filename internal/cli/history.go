package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gasplit/config"
	"gasplit/internal/adapter/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previous split runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	rootDir := GetRootDir()

	dbPath := config.HistoryDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No run history yet. Run 'gasplit split' first.")
		return nil
	}

	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No run history yet.")
		return nil
	}

	for _, rec := range runs {
		fmt.Printf("%s  %s  %s\n", rec.ID, rec.Time.Format("2006-01-02 15:04:05"), rec.Source)
		fmt.Printf("    lines=%d assigned=%d header=%d unmatched=%d modules=%d",
			rec.Summary.TotalLines, rec.Summary.Consumed, rec.Summary.Header,
			rec.Summary.Unmatched, len(rec.Modules))
		if rec.Summary.TruncatedUnits > 0 {
			fmt.Printf(" truncated=%d", rec.Summary.TruncatedUnits)
		}
		fmt.Println()
	}
	return nil
}
