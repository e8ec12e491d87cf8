package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/report"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/stats"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Report the token distribution across entity labels",
	Long: `Count word tokens per entity label and report the class imbalance between
meaningful entities (question/answer) and irrelevant context (header/other).`,
	Args: cobra.NoArgs,
	RunE: runLabels,
}

var (
	labelsPlotPath string
	labelsPlotSize int
)

func init() {
	RootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringVar(&labelsPlotPath, "plot", "", "Path of a bar chart image, e.g. eda_label_distribution.png (optional)")
	labelsCmd.Flags().IntVar(&labelsPlotSize, "plot-size", report.DefaultBarsSize, "Width and height of the bar chart in pixels")
}

func runLabels(cmd *cobra.Command, args []string) error {
	if labelsPlotSize <= 0 {
		return fmt.Errorf("invalid plot size: %d", labelsPlotSize)
	}

	config, dataset, err := prepareRun("labels", currentSettings())
	if err != nil {
		return err
	}

	counts := stats.LabelDistribution(config.DocumentIDs, dataset)
	printLabelReport(os.Stdout, counts)

	if labelsPlotPath != "" {
		if err := report.SaveLabelBars(labelsPlotPath, counts, labelsPlotSize); err != nil {
			return fmt.Errorf("failed to save plot: %w", err)
		}
		fmt.Printf("\nPlot saved to %s\n", labelsPlotPath)
	}

	return saveSummary(report.Summary{
		Config: config,
		Labels: report.NewLabelSummary(counts),
	})
}

func printLabelReport(w io.Writer, counts stats.LabelCounts) {
	fmt.Fprintln(w, "\n--- Label Distribution Counts ---")
	fmt.Fprintf(w, "Documents Analyzed: %d\n", counts.Documents)
	if len(counts.Skipped) > 0 {
		fmt.Fprintf(w, "Documents Skipped: %d\n", len(counts.Skipped))
	}
	fmt.Fprintf(w, "Total Tokens Analyzed: %d\n", counts.Total)
	fmt.Fprintf(w, "Meaningful Entities (Question/Answer): %d\n", counts.Meaningful)
	fmt.Fprintf(w, "Irrelevant Context (O-Tag): %d\n", counts.Irrelevant)

	if pct, ok := counts.ImbalancePercent(); ok {
		fmt.Fprintf(w, "\nEstimated 'O' Token Percentage: %.2f%%\n", pct)
	} else {
		fmt.Fprintln(w, "\nEstimated 'O' Token Percentage: n/a")
	}

	if len(counts.ByLabel) == 0 {
		return
	}

	labels := make([]string, 0, len(counts.ByLabel))
	for label := range counts.ByLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Fprintln(w, "\nTokens per label:")
	for _, label := range labels {
		fmt.Fprintf(w, "  %-10s %d\n", label, counts.ByLabel[label])
	}
}
