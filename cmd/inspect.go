package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/bbox"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/funsd"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <document-id>",
	Short: "Print the image size and the first entities of one document",
	Long: `Print the image size and the first entities of one document, with their raw
and normalized boxes. Useful to check that raw coordinates stay within the image.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

var inspectLimit int

func init() {
	RootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectLimit, "limit", "n", 3, "Number of entities to print")
}

func runInspect(cmd *cobra.Command, args []string) error {
	dataset := funsd.New(imageDir, annotationDir, imageExt)
	return inspectDocument(os.Stdout, dataset, args[0], inspectLimit)
}

func inspectDocument(w io.Writer, dataset *funsd.Dataset, id string, limit int) error {
	size, err := dataset.LookupDimensions(id)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}
	fmt.Fprintf(w, "Image dimensions: w- %d, h- %d\n", size.Width, size.Height)

	annotation, err := dataset.Load(id)
	if err != nil {
		return fmt.Errorf("failed to load annotation: %w", err)
	}
	fmt.Fprintf(w, "Loaded annotation with %d entities\n", len(annotation.Form))

	fmt.Fprintln(w, "\n--- Annotation Sample ---")
	for i, entity := range annotation.Form {
		if limit >= 0 && i >= limit {
			break
		}
		normalized := bbox.NormalizeBox(entity.Box, size.Width, size.Height)

		fmt.Fprintf(w, "Token: '%s' (%s)\n", entity.Text, entity.Label)
		fmt.Fprintf(w, "Raw Box: %s\n", formatBox(entity.Box))
		fmt.Fprintf(w, "Normalized Box: %v\n", normalized)
		fmt.Fprintf(w, "  X_max (%g) vs W_orig (%d)\n", entity.Box[2], size.Width)
		fmt.Fprintf(w, "  Y_max (%g) vs H_orig (%d)\n", entity.Box[3], size.Height)
		fmt.Fprintln(w, strings.Repeat("-", 20))
	}

	return nil
}

func formatBox(b bbox.Box) string {
	return fmt.Sprintf("[%g, %g, %g, %g]", b[0], b[1], b[2], b[3])
}
