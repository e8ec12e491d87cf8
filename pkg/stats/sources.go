// Package stats aggregates per-document measurements across a batch of FUNSD documents.
//
// Documents are processed sequentially in the order given. Missing or unreadable
// documents are logged and skipped, they never abort a batch.
package stats

import (
	"errors"
	"fmt"

	"github.com/lehigh-university-libraries/funsd-eda/pkg/funsd"
)

// ErrNoAnnotation is returned when a source reports success without an annotation
var ErrNoAnnotation = errors.New("no annotation returned")

// DimensionSource resolves a document ID to its image size.
// A zero Size means the image could not be read.
type DimensionSource interface {
	Dimensions(id string) funsd.Size
}

// AnnotationSource resolves a document ID to its parsed annotation.
// A nil annotation without an error is treated as a failed load.
type AnnotationSource interface {
	Load(id string) (*funsd.Annotation, error)
}

func loadAnnotation(loader AnnotationSource, id string) (*funsd.Annotation, error) {
	annotation, err := loader.Load(id)
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoAnnotation, id)
	}
	return annotation, nil
}
