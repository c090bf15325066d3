package annotation

import (
	"regexp"
	"strings"
)

// MaxBlockLines bounds both the number of lines examined after a block
// opener and the distance [Parser.Lookup] walks back from a queried line.
const MaxBlockLines = 4

var (
	openerExpr      = regexp.MustCompile(`^\s*///\s*@ponder\s*$`)
	legacyExpr      = regexp.MustCompile(`///\s*@ponder\s+(\S+)`)
	leaderExpr      = regexp.MustCompile(`^\s*///`)
	previewExpr     = regexp.MustCompile(`^\s*///\s*@preview\s+(\S+)`)
	detailedExpr    = regexp.MustCompile(`^\s*///\s*@detailed\s+(\S+)`)
	descriptionExpr = regexp.MustCompile(`^\s*///\s*@description\s+(.*\S)`)
	keywordExpr     = regexp.MustCompile(`///\s*@(?:ponder|preview|detailed|description)\b`)
)

// Parser recognizes annotation blocks in a [Document].
//
// The zero value is ready to use and leaves relative paths unresolved.
type Parser struct {
	Resolver Resolver
}

// New creates a [Parser] that resolves relative paths with r.
func New(r Resolver) Parser {
	return Parser{Resolver: r}
}

// Parse attempts to recognize an annotation starting at line. On success it
// returns the record and the span it occupies. Otherwise it returns nil and
// a span covering only line, so callers can advance by one.
func (p Parser) Parse(doc Document, line int) (*Record, Span) {
	noMatch := Span{Start: line, End: line}

	if line < 0 || line >= doc.LineCount() {
		return nil, noMatch
	}

	text := doc.Line(line)

	// The block opener is tried first: a bare "@ponder" followed only by
	// whitespace must never be read as a legacy annotation.
	if openerExpr.MatchString(text) {
		rec := p.parseBlock(doc, line)
		if rec == nil {
			return nil, noMatch
		}

		return rec, rec.Span
	}

	if m := legacyExpr.FindStringSubmatch(text); m != nil {
		ref := p.Resolve(doc, m[1])

		return &Record{
			Preview:  ref,
			Detailed: ref,
			Dialect:  DialectLegacy,
			Span:     noMatch,
		}, noMatch
	}

	return nil, noMatch
}

// parseBlock scans the key/value lines following a block opener at line.
// It returns nil if neither @preview nor @detailed was found.
func (p Parser) parseBlock(doc Document, line int) *Record {
	var (
		preview, detailed string
		description       string
		havePreview       bool
		haveDetailed      bool
	)

	end := line
	last := min(line+MaxBlockLines, doc.LineCount()-1)

	for i := line + 1; i <= last; i++ {
		text := doc.Line(i)

		if !leaderExpr.MatchString(text) {
			break
		}

		end = i

		switch {
		case previewExpr.MatchString(text):
			preview = previewExpr.FindStringSubmatch(text)[1]
			havePreview = true
		case detailedExpr.MatchString(text):
			detailed = detailedExpr.FindStringSubmatch(text)[1]
			haveDetailed = true
		case descriptionExpr.MatchString(text):
			description = strings.TrimSpace(descriptionExpr.FindStringSubmatch(text)[1])
		}
	}

	if !havePreview && !haveDetailed {
		return nil
	}

	rec := &Record{
		Description: description,
		Dialect:     DialectBlock,
		Span:        Span{Start: line, End: end},
	}

	if havePreview {
		rec.Preview = p.Resolve(doc, preview)
	}

	if haveDetailed {
		rec.Detailed = Reference(detailed)
	}

	if !havePreview {
		rec.Preview = rec.Detailed
	}

	if !haveDetailed {
		rec.Detailed = rec.Preview
	}

	return rec
}

// Scan returns every annotation record in doc, ordered by start line. Spans
// never overlap.
func (p Parser) Scan(doc Document) []Record {
	var records []Record

	for i := 0; i < doc.LineCount(); {
		rec, span := p.Parse(doc, i)
		if rec == nil {
			i++

			continue
		}

		records = append(records, *rec)
		i = span.End + 1
	}

	return records
}

// Lookup finds the record covering line. A record is only reported when
// line itself carries an annotation keyword; comment lines absorbed into a
// block without one are not hoverable.
func (p Parser) Lookup(doc Document, line int) (*Match, bool) {
	if line < 0 || line >= doc.LineCount() {
		return nil, false
	}

	rec, _ := p.Parse(doc, line)

	for i := 1; rec == nil && i <= MaxBlockLines && line-i >= 0; i++ {
		candidate, span := p.Parse(doc, line-i)
		if candidate != nil && span.End >= line {
			rec = candidate
		}
	}

	if rec == nil || !rec.Span.Contains(line) {
		return nil, false
	}

	if !keywordExpr.MatchString(doc.Line(line)) {
		return nil, false
	}

	return &Match{Record: *rec, Hover: rec.Span}, true
}
