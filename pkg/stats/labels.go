package stats

import (
	"log/slog"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/funsd"
)

// Bucket names used when grouping labels for the class imbalance report
const (
	BucketMeaningful = "Meaningful_Entity"
	BucketIrrelevant = "Irrelevant_Context"
)

// LabelCounts holds token counts per label bucket.
//
// Meaningful counts tokens of question and answer entities, Irrelevant counts
// everything else (header, other and any unexpected label).
type LabelCounts struct {
	Meaningful int            `json:"meaningful" yaml:"meaningful"`
	Irrelevant int            `json:"irrelevant" yaml:"irrelevant"`
	Total      int            `json:"total" yaml:"total"`
	ByLabel    map[string]int `json:"by_label" yaml:"by_label"`
	Entities   int            `json:"entities" yaml:"entities"`
	Documents  int            `json:"documents" yaml:"documents"`
	Skipped    []string       `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// LabelDistribution counts word tokens per label bucket across all documents.
// Documents whose annotation cannot be loaded are skipped and listed in Skipped.
func LabelDistribution(ids []string, loader AnnotationSource) LabelCounts {
	counts := LabelCounts{
		ByLabel: map[string]int{},
	}

	for _, id := range ids {
		annotation, err := loadAnnotation(loader, id)
		if err != nil {
			slog.Warn("Skipping document", "id", id, "err", err)
			counts.Skipped = append(counts.Skipped, id)
			continue
		}

		for _, entity := range annotation.Form {
			counts.Add(entity.Label, len(entity.Words))
		}
		counts.Documents++
	}

	return counts
}

// Add records the tokens of one entity
func (c *LabelCounts) Add(label string, tokens int) {
	if c.ByLabel == nil {
		c.ByLabel = map[string]int{}
	}

	if funsd.IsMeaningful(label) {
		c.Meaningful += tokens
	} else {
		c.Irrelevant += tokens
	}
	c.ByLabel[label] += tokens
	c.Total += tokens
	c.Entities++
}

// ImbalancePercent is the share of irrelevant tokens in percent.
// ok is false when no tokens were counted.
func (c LabelCounts) ImbalancePercent() (pct float64, ok bool) {
	return percent(c.Irrelevant, c.Total)
}

// MeaningfulPercent is the share of question/answer tokens in percent.
// ok is false when no tokens were counted.
func (c LabelCounts) MeaningfulPercent() (pct float64, ok bool) {
	return percent(c.Meaningful, c.Total)
}

// Buckets returns the token count per bucket, keyed by bucket name
func (c LabelCounts) Buckets() map[string]int {
	return map[string]int{
		BucketMeaningful: c.Meaningful,
		BucketIrrelevant: c.Irrelevant,
	}
}

func percent(part, total int) (float64, bool) {
	if total <= 0 {
		return 0, false
	}
	return float64(part) / float64(total) * 100, true
}
