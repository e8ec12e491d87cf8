package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/report"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/stats"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Report the variance of page sizes across documents",
	Long: `Report the original width, height and aspect ratio of every document image.

The table is printed, written as CSV and optionally as an XLSX workbook. The wide
range of page sizes is what makes coordinate normalization necessary.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

var (
	layoutCSVPath  string
	layoutXLSXPath string
)

func init() {
	RootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVar(&layoutCSVPath, "csv", "layout_variance_report.csv", "Path of the CSV table, empty to skip")
	layoutCmd.Flags().StringVar(&layoutXLSXPath, "xlsx", "", "Path of an XLSX workbook with the same table (optional)")
}

func runLayout(cmd *cobra.Command, args []string) error {
	config, dataset, err := prepareRun("layout", currentSettings())
	if err != nil {
		return err
	}

	layout := stats.LayoutVariance(config.DocumentIDs, dataset)
	printLayoutReport(os.Stdout, layout)

	if layoutCSVPath != "" {
		err := report.SaveFile(layoutCSVPath, func(w io.Writer) error {
			return report.WriteLayoutCSV(w, layout.Records)
		})
		if err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		fmt.Printf("\nResults saved to %s\n", layoutCSVPath)
	}

	if layoutXLSXPath != "" {
		err := report.SaveFile(layoutXLSXPath, func(w io.Writer) error {
			return report.WriteLayoutXLSX(w, layout)
		})
		if err != nil {
			return fmt.Errorf("failed to write XLSX: %w", err)
		}
		fmt.Printf("Workbook saved to %s\n", layoutXLSXPath)
	}

	return saveSummary(report.Summary{
		Config: config,
		Layout: &layout,
	})
}

func printLayoutReport(w io.Writer, layout stats.LayoutReport) {
	rule := strings.Repeat("-", 65)

	fmt.Fprintln(w, "\n--- Document Layout Variance Report ---")
	fmt.Fprintf(w, "Width Range: %d to %d pixels\n", layout.MinWidth, layout.MaxWidth)
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(report.LayoutHeader, "\t")+"\t")
	for _, r := range layout.Records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t\n", r.DocumentID, r.Width, r.Height, strconv.FormatFloat(r.AspectRatio, 'f', 2, 64))
	}
	tw.Flush()

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Documents: %d\n", len(layout.Records))
}
