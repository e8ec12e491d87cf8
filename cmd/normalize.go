package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/bbox"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <x0> <y0> <x1> <y1>",
	Short: "Normalize a raw pixel box to the 0-1000 grid",
	Example: `  funsd-eda normalize 110 109 185 124 --width 762 --height 1000
  funsd-eda normalize 800 300 1050 450 --width 1200 --height 800`,
	Args: cobra.ExactArgs(4),
	RunE: runNormalize,
}

var (
	normalizeWidth  int
	normalizeHeight int
)

func init() {
	RootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().IntVar(&normalizeWidth, "width", 0, "Original image width in pixels")
	normalizeCmd.Flags().IntVar(&normalizeHeight, "height", 0, "Original image height in pixels")

	for _, name := range []string{"width", "height"} {
		err := normalizeCmd.MarkFlagRequired(name)
		if err != nil {
			slog.Error("Unable to mark flag as required", "flag", name, "err", err)
			os.Exit(1)
		}
	}
}

func runNormalize(cmd *cobra.Command, args []string) error {
	box, err := parseBox(args)
	if err != nil {
		return err
	}

	normalized := bbox.NormalizeBox(box, normalizeWidth, normalizeHeight)
	fmt.Fprintf(cmd.OutOrStdout(), "Resulting Normalized Box: %v\n", normalized)

	return nil
}

func parseBox(args []string) (bbox.Box, error) {
	var box bbox.Box
	if len(args) != len(box) {
		return box, fmt.Errorf("expected %d coordinates, got %d", len(box), len(args))
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return box, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		box[i] = v
	}
	return box, nil
}
