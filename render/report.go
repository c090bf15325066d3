package render

import "go.jacobcolvin.com/ponder/annotation"

// Annotation is the serialized form of one record and its lens.
type Annotation struct {
	Preview     string `json:"preview"               yaml:"preview"`
	Detailed    string `json:"detailed"              yaml:"detailed"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Dialect     string `json:"dialect"               yaml:"dialect"`
	Lens        Lens   `json:"lens"                  yaml:"lens"`
}

// FileReport lists the annotations of one document.
type FileReport struct {
	URI         string       `json:"uri"         yaml:"uri"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
}

// Report is the output of a scan over one or more documents.
type Report struct {
	Files []FileReport `json:"files" yaml:"files"`
}

// NewFileReport builds the report for a scanned document.
func NewFileReport(doc annotation.Document, records []annotation.Record) FileReport {
	fr := FileReport{
		URI:         doc.URI(),
		Annotations: make([]Annotation, 0, len(records)),
	}

	for _, rec := range records {
		fr.Annotations = append(fr.Annotations, Annotation{
			Preview:     rec.Preview.String(),
			Detailed:    rec.Detailed.String(),
			Description: rec.Description,
			Dialect:     rec.Dialect.String(),
			Lens:        LensFor(doc, rec),
		})
	}

	return fr
}
