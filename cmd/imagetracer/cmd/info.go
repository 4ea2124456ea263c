package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoInputVal string

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "show a fixture's dimensions and observed color range",
	Long: `Read a fixture file and print its width, height, and observed
min/max color index, without running the tracer.`,
	Run: doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVar(&infoInputVal, "input", "", "input fixture file (required)")
}

func doInfo(cmd *cobra.Command, args []string) {
	if infoInputVal == "" {
		fmt.Println("--input is required")
		return
	}
	f, err := readFixture(infoInputVal)
	check(err)

	min, max := minMaxColor(f.Pixels)
	fmt.Printf("%dx%d, color range [%d, %d]\n", f.Width, f.Height, min, max)
}
