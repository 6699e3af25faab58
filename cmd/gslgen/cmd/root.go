// Package cmd provides the CLI commands for gslgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gslgen/internal/config"
	"gslgen/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gslgen",
	Short: "Generate MRM transition lists for glycosphingolipids and ceramides",
	Long: `gslgen enumerates sphingolipid species from configurable building
blocks and produces Skyline-ready transition lists: precursor ions across
adducts and charge states, plus the diagnostic fragment ions each lipid
class is known to yield.

Examples:
  gslgen generate --lipid-class GM1 --charge-states 1 2 --adducts '[M+H]+' '[M+Na]+' --add-labels -v
  gslgen generate --lipid-class Cer --adducts '[M+H]+' '[M+NH4]+' -v
  gslgen generate --lipid-class GD3 --charge-states 2 3 -v
  gslgen classes`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gslgen.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(adductsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		// Fall back to the per-user file; Load treats a missing file as
		// the built-in defaults.
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gslgen version 1.0.0")
	},
}
