// Package render turns annotation records into the two views an editor
// shows: a lens above each annotated block and a hover preview.
package render

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf16"

	"go.jacobcolvin.com/ponder/annotation"
)

const (
	// Title labels every lens and hover.
	Title = "🤔 Ponder"
	// CommandOpenDetailed is the command a lens triggers. Its single
	// argument is the detailed reference.
	CommandOpenDetailed = "ponderWidget.openDetailedDemo"
	// Tooltip is shown when hovering a lens.
	Tooltip = "Click to open demo"
	// DefaultPreviewSize is the default hover image width in pixels.
	DefaultPreviewSize = 200
)

// Position is a 0-based line and character offset.
type Position struct {
	Line      int `json:"line"      yaml:"line"`
	Character int `json:"character" yaml:"character"`
}

// Range is a document range from Start to End.
type Range struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end"   yaml:"end"`
}

// SpanRange converts a line span into a [Range] covering the span's lines
// in full. Characters are counted in UTF-16 code units, as editors do.
func SpanRange(doc annotation.Document, span annotation.Span) Range {
	end := doc.Line(span.End)

	return Range{
		Start: Position{Line: span.Start},
		End:   Position{Line: span.End, Character: len(utf16.Encode([]rune(end)))},
	}
}

// Lens is an actionable summary anchored above an annotation.
type Lens struct {
	Title     string   `json:"title"     yaml:"title"`
	Command   string   `json:"command"   yaml:"command"`
	Tooltip   string   `json:"tooltip"   yaml:"tooltip"`
	Arguments []string `json:"arguments" yaml:"arguments"`
	Range     Range    `json:"range"     yaml:"range"`
}

// LensFor builds the lens for one record.
func LensFor(doc annotation.Document, rec annotation.Record) Lens {
	return Lens{
		Range:     SpanRange(doc, rec.Span),
		Title:     Title,
		Command:   CommandOpenDetailed,
		Arguments: []string{rec.Detailed.String()},
		Tooltip:   Tooltip,
	}
}

// Lenses builds one lens per record.
func Lenses(doc annotation.Document, records []annotation.Record) []Lens {
	lenses := make([]Lens, 0, len(records))
	for _, rec := range records {
		lenses = append(lenses, LensFor(doc, rec))
	}

	return lenses
}

// Options carries the configuration snapshot used while rendering.
type Options struct {
	// PreviewSize is the hover image width in pixels. Values below 1 use
	// [DefaultPreviewSize].
	PreviewSize int
}

// Hover is a rich preview for the annotation under a position.
type Hover struct {
	Markdown string `json:"markdown" yaml:"markdown"`
	Range    Range  `json:"range"    yaml:"range"`
}

// HoverFor builds the hover for a lookup match. The markdown is trusted and
// contains HTML, so attribute values are escaped.
func HoverFor(doc annotation.Document, m *annotation.Match, opts Options) Hover {
	size := opts.PreviewSize
	if size < 1 {
		size = DefaultPreviewSize
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "**%s**\n\n", Title)

	if m.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", m.Description)
	}

	fmt.Fprintf(&sb, `<img src="%s" width="%d"/>`, html.EscapeString(m.Preview.String()), size)

	return Hover{
		Markdown: sb.String(),
		Range:    SpanRange(doc, m.Hover),
	}
}
