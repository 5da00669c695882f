package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gasplit/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "gasplit",
	Short: "Split a monolithic Apps Script file into logical modules",
	Long: `gasplit partitions one large Apps Script source file into per-category
module files using an ordered catalog of declaration patterns, reports
which lines were left unassigned, and keeps a history of runs.

Example usage:
  gasplit split gs_torx_main.gs    # Split the monolith into src/
  gasplit expenses -m 8 -y 2025    # Monthly card-expense report
  gasplit history                  # List previous split runs`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./gasplit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
