package stats

import (
	"log/slog"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/bbox"
	"github.com/lehigh-university-libraries/funsd-eda/pkg/funsd"
)

// Center is the normalized midpoint of a question or answer entity
type Center struct {
	DocumentID string  `json:"document_id" yaml:"document_id"`
	Label      string  `json:"label" yaml:"label"`
	X          float64 `json:"x" yaml:"x"`
	Y          float64 `json:"y" yaml:"y"`
}

// Point returns the center as a grid point
func (c Center) Point() bbox.Point {
	return bbox.Point{X: c.X, Y: c.Y}
}

// SpatialReport holds the centers collected across a batch
type SpatialReport struct {
	Centers   []Center `json:"centers" yaml:"centers"`
	Documents int      `json:"documents" yaml:"documents"`
	Skipped   []string `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// SpatialCenters normalizes the box of every question and answer entity and
// collects its center. Documents without image dimensions or without a readable
// annotation are skipped.
func SpatialCenters(ids []string, dims DimensionSource, loader AnnotationSource) SpatialReport {
	var report SpatialReport

	for _, id := range ids {
		size := dims.Dimensions(id)
		if size.IsZero() {
			report.Skipped = append(report.Skipped, id)
			continue
		}

		annotation, err := loadAnnotation(loader, id)
		if err != nil {
			slog.Warn("Skipping document", "id", id, "err", err)
			report.Skipped = append(report.Skipped, id)
			continue
		}

		for _, entity := range annotation.Form {
			if !funsd.IsMeaningful(entity.Label) {
				continue
			}

			box := bbox.NormalizeBox(entity.Box, size.Width, size.Height)
			if !box.Valid() {
				slog.Debug("Malformed box", "id", id, "entity", entity.ID, "box", box)
			}

			c := box.Center()
			report.Centers = append(report.Centers, Center{
				DocumentID: id,
				Label:      entity.Label,
				X:          c.X,
				Y:          c.Y,
			})
		}
		report.Documents++
	}

	return report
}
