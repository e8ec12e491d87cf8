package stats

import (
	"log/slog"
	"strconv"
)

// LayoutRecord is one row of the layout variance table
type LayoutRecord struct {
	DocumentID  string  `json:"document_id" yaml:"document_id"`
	Width       int     `json:"width" yaml:"width"`
	Height      int     `json:"height" yaml:"height"`
	AspectRatio float64 `json:"aspect_ratio" yaml:"aspect_ratio"`
}

// LayoutReport is the layout variance table plus the width range across the batch
type LayoutReport struct {
	Records  []LayoutRecord `json:"records" yaml:"records"`
	MinWidth int            `json:"min_width" yaml:"min_width"`
	MaxWidth int            `json:"max_width" yaml:"max_width"`
}

// LayoutVariance looks up the image size of every document and returns one record
// per ID, in input order. Documents without a readable image are kept with a zero
// size and a zero aspect ratio.
func LayoutVariance(ids []string, dims DimensionSource) LayoutReport {
	report := LayoutReport{
		Records: make([]LayoutRecord, 0, len(ids)),
	}

	for i, id := range ids {
		size := dims.Dimensions(id)
		record := LayoutRecord{
			DocumentID:  id,
			Width:       size.Width,
			Height:      size.Height,
			AspectRatio: AspectRatio(size.Width, size.Height),
		}
		report.Records = append(report.Records, record)

		if i == 0 || record.Width < report.MinWidth {
			report.MinWidth = record.Width
		}
		if i == 0 || record.Width > report.MaxWidth {
			report.MaxWidth = record.Width
		}
	}

	slog.Debug("Layout variance computed", "documents", len(report.Records), "min_width", report.MinWidth, "max_width", report.MaxWidth)

	return report
}

// AspectRatio returns width/height rounded to two decimals, or 0 when height is 0
func AspectRatio(width, height int) float64 {
	if height == 0 {
		return 0
	}
	return round2(float64(width) / float64(height))
}

// round2 rounds the exact binary value to two decimals, ties to even (0.125 -> 0.12).
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
