package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "imagetracer",
	Short: "trace indexed raster fixtures into vector layers",
	Long: `imagetracer is the command-line driver for the imagetracer core:
	- trace an indexed-pixel fixture into per-color polygon layers,
	- tweak fitting thresholds via a YAML build settings file,
	- inspect a fixture's dimensions and color range without tracing it.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once
// from main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
