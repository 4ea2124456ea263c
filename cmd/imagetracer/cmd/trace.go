package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SillyBits/imagetracer"
)

var (
	traceInputVal  string
	traceConfigVal string
	traceOutVal    string
)

// traceCmd represents the trace command.
var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "trace an indexed-pixel fixture into vector layers",
	Long: `Trace a fixture file (an indexed-pixel buffer with a width/height
header) into per-color polygon layers, using the fitting thresholds
from a YAML build settings file, and write a YAML summary of the
result.`,
	Run: doTrace,
}

func init() {
	RootCmd.AddCommand(traceCmd)

	traceCmd.Flags().StringVar(&traceInputVal, "input", "", "input fixture file (required)")
	traceCmd.Flags().StringVar(&traceConfigVal, "config", "", "build settings YAML (defaults to imagetracer.DefaultOptions())")
	traceCmd.Flags().StringVar(&traceOutVal, "out", "", "summary YAML output file (required)")
}

// summary is what trace writes to --out: enough to sanity-check a
// trace without re-deriving it from raw polygon data.
type summary struct {
	Layers []layerSummary `yaml:"layers"`
}

type layerSummary struct {
	ColorIndex   int `yaml:"color_index"`
	PolygonCount int `yaml:"polygon_count"`
	SegmentCount int `yaml:"segment_count"`
}

func doTrace(cmd *cobra.Command, args []string) {
	if traceInputVal == "" || traceOutVal == "" {
		fmt.Println("both --input and --out are required")
		os.Exit(1)
	}

	f, err := readFixture(traceInputVal)
	check(err)

	opts := imagetracer.DefaultOptions()
	if traceConfigVal != "" {
		check(unmarshalYAMLFile(traceConfigVal, &opts))
	}

	result, traceErr := imagetracer.Trace(f.Pixels, f.Width, f.Height, opts, nil)
	if traceErr != nil {
		fmt.Println("trace failed:", traceErr)
		os.Exit(1)
	}

	s := summary{Layers: make([]layerSummary, len(result.Layers))}
	for i, layer := range result.Layers {
		segs := 0
		for _, p := range layer.Polygons {
			segs += len(p.Segments)
		}
		s.Layers[i] = layerSummary{
			ColorIndex:   layer.ColorIndex,
			PolygonCount: len(layer.Polygons),
			SegmentCount: segs,
		}
	}

	check(marshalYAMLFile(traceOutVal, s))
	fmt.Printf("traced %d layer(s), summary written to '%s'\n", len(s.Layers), traceOutVal)
}

func check(err error) {
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
