package funsd

import "github.com/lehigh-university-libraries/funsd-eda/pkg/bbox"

// Entity labels used by the FUNSD annotations
const (
	LabelQuestion = "question"
	LabelAnswer   = "answer"
	LabelHeader   = "header"
	LabelOther    = "other"
)

// Annotation is the content of one {id}.json annotation file
type Annotation struct {
	Form []Entity `json:"form"`
}

// Entity is one labeled region of a form
type Entity struct {
	ID      int      `json:"id"`
	Box     bbox.Box `json:"box"`
	Text    string   `json:"text"`
	Label   string   `json:"label"`
	Words   []Word   `json:"words"`
	Linking [][2]int `json:"linking"`
}

// Word is a single token inside an entity
type Word struct {
	Box  bbox.Box `json:"box"`
	Text string   `json:"text"`
}

// Size holds the pixel dimensions of a document image
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// IsZero reports whether either side is zero, in which case boxes cannot be normalized
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// IsMeaningful reports whether the label is one of the key-value labels (question or answer)
func IsMeaningful(label string) bool {
	return label == LabelQuestion || label == LabelAnswer
}

// applyDefaults fills in the values that are optional in the annotation files
func (a *Annotation) applyDefaults() {
	for i := range a.Form {
		e := &a.Form[i]
		if e.Label == "" {
			e.Label = LabelOther
		}
		if e.Words == nil {
			e.Words = []Word{}
		}
	}
}
