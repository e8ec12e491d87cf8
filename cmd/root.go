package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/funsd"
)

var RootCmd = &cobra.Command{
	Use:   "funsd-eda",
	Short: "Exploratory data analysis for the FUNSD form understanding dataset",
	Long: `Exploratory data analysis for the FUNSD form understanding dataset.

Reports page layout variance, label class imbalance and the spatial
distribution of question/answer entities on the normalized 0-1000 grid.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		ll, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}

		switch strings.ToUpper(ll) {
		case "DEBUG":
			level = slog.LevelDebug
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		handler := slog.New(slog.NewTextHandler(os.Stdout, opts))
		slog.SetDefault(handler)

		return nil
	},
}

var (
	imageDir      string
	annotationDir string
	imageExt      string
	idList        string
	idsFile       string
	configPath    string
	reportsDir    string
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.String("log-level", getenv("LOG_LEVEL", "INFO"), "The logging level for the command")
	flags.StringVar(&imageDir, "images", getenv("FUNSD_IMAGE_DIR", funsd.DefaultImageDir), "Directory containing the document images")
	flags.StringVar(&annotationDir, "annotations", getenv("FUNSD_ANNOTATION_DIR", funsd.DefaultAnnotationDir), "Directory containing the annotation JSON files")
	flags.StringVar(&imageExt, "image-ext", getenv("FUNSD_IMAGE_EXT", funsd.DefaultImageExt), "Image file extension")
	flags.StringVar(&idList, "ids", "", "Comma separated document IDs (default: every annotation in --annotations)")
	flags.StringVar(&idsFile, "ids-file", "", "File with document IDs, one or more per line")
	flags.StringVar(&configPath, "config", "", "Path to a previous run summary to rerun with the same dataset and IDs")
	flags.StringVar(&reportsDir, "reports", "reports", "Directory for run summaries")
}
