package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "go.yaml.in/yaml/v3"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/stats"
)

// TimestampFormat is used for run timestamps and summary file names
const TimestampFormat = "2006-01-02_15-04-05"

// RunConfig captures everything needed to rerun an analysis
type RunConfig struct {
	Command       string   `json:"command" yaml:"command"`
	ImageDir      string   `json:"image_dir" yaml:"image_dir"`
	AnnotationDir string   `json:"annotation_dir" yaml:"annotation_dir"`
	ImageExt      string   `json:"image_ext" yaml:"image_ext"`
	DocumentIDs   []string `json:"document_ids" yaml:"document_ids"`
	Timestamp     string   `json:"timestamp" yaml:"timestamp"`
}

// LabelSummary is the label distribution together with its derived percentages
type LabelSummary struct {
	stats.LabelCounts `yaml:",inline"`
	// Unset when no tokens were counted
	ImbalancePercent  *float64 `json:"imbalance_percent,omitempty" yaml:"imbalance_percent,omitempty"`
	MeaningfulPercent *float64 `json:"meaningful_percent,omitempty" yaml:"meaningful_percent,omitempty"`
}

// NewLabelSummary derives the percentages from the counts
func NewLabelSummary(counts stats.LabelCounts) *LabelSummary {
	s := &LabelSummary{LabelCounts: counts}
	if pct, ok := counts.ImbalancePercent(); ok {
		s.ImbalancePercent = &pct
	}
	if pct, ok := counts.MeaningfulPercent(); ok {
		s.MeaningfulPercent = &pct
	}
	return s
}

// Summary is the YAML document saved after every run
type Summary struct {
	Config  RunConfig            `json:"config" yaml:"config"`
	Layout  *stats.LayoutReport  `json:"layout,omitempty" yaml:"layout,omitempty"`
	Labels  *LabelSummary        `json:"labels,omitempty" yaml:"labels,omitempty"`
	Spatial *stats.SpatialReport `json:"spatial,omitempty" yaml:"spatial,omitempty"`
}

// NewTimestamp formats the current time with TimestampFormat
func NewTimestamp() string {
	return time.Now().Format(TimestampFormat)
}

// SummaryPath returns {dir}/{command}_{timestamp}.yaml
func SummaryPath(dir string, config RunConfig) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.yaml", config.Command, config.Timestamp))
}

// SaveSummary writes the summary to {dir}/{command}_{timestamp}.yaml and returns the path
func SaveSummary(dir string, summary Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", err
	}

	path := SummaryPath(dir, summary.Config)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadRunConfig reads the config of a previously saved summary and stamps it
// with the current time for the rerun
func LoadRunConfig(path string) (RunConfig, error) {
	var summary Summary

	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, err
	}

	if err := yaml.Unmarshal(data, &summary); err != nil {
		return RunConfig{}, err
	}

	summary.Config.Timestamp = NewTimestamp()

	return summary.Config, nil
}
