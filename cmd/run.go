package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/funsd-eda/internal/utils"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/funsd"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/report"
)

// runSettings holds the dataset selection shared by every analysis command
type runSettings struct {
	ImageDir      string
	AnnotationDir string
	ImageExt      string
	IDs           string
	IDsFile       string
	ConfigPath    string
}

func currentSettings() runSettings {
	return runSettings{
		ImageDir:      imageDir,
		AnnotationDir: annotationDir,
		ImageExt:      imageExt,
		IDs:           idList,
		IDsFile:       idsFile,
		ConfigPath:    configPath,
	}
}

// prepareRun builds the run config for command, either from the flags or from
// a previous run summary, and opens the dataset it points at. When no IDs were
// given every annotation in the annotation directory is used.
func prepareRun(command string, settings runSettings) (report.RunConfig, *funsd.Dataset, error) {
	var config report.RunConfig
	var err error

	if settings.ConfigPath != "" {
		config, err = report.LoadRunConfig(settings.ConfigPath)
		if err != nil {
			return report.RunConfig{}, nil, fmt.Errorf("failed to load config: %w", err)
		}
		slog.Info("Loaded configuration", "path", settings.ConfigPath, "command", config.Command, "documents", len(config.DocumentIDs))
		config.Command = command
	} else {
		config = report.RunConfig{
			Command:       command,
			ImageDir:      settings.ImageDir,
			AnnotationDir: settings.AnnotationDir,
			ImageExt:      settings.ImageExt,
			DocumentIDs:   utils.ParseIDs(settings.IDs),
			Timestamp:     report.NewTimestamp(),
		}

		if settings.IDsFile != "" {
			fileIDs, err := utils.ReadIDsFile(settings.IDsFile)
			if err != nil {
				return report.RunConfig{}, nil, err
			}
			config.DocumentIDs = utils.MergeIDs(config.DocumentIDs, fileIDs...)
		}
	}

	dataset := funsd.New(config.ImageDir, config.AnnotationDir, config.ImageExt)
	config.ImageExt = dataset.ImageExt

	if len(config.DocumentIDs) == 0 {
		config.DocumentIDs, err = dataset.DocumentIDs()
		if err != nil {
			return report.RunConfig{}, nil, fmt.Errorf("failed to discover document IDs: %w", err)
		}
		if len(config.DocumentIDs) == 0 {
			slog.Warn("No annotations found", "dir", dataset.AnnotationDir)
		}
	}

	slog.Debug("Run prepared", "command", command, "documents", len(config.DocumentIDs), "images", dataset.ImageDir, "annotations", dataset.AnnotationDir)

	return config, dataset, nil
}

func saveSummary(summary report.Summary) error {
	path, err := report.SaveSummary(reportsDir, summary)
	if err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}
	fmt.Printf("\nSummary saved to: %s\n", path)
	return nil
}
