package annotation

// Dialect identifies the textual form an annotation was written in.
type Dialect int

const (
	// DialectLegacy is the single-line "/// @ponder <path>" form.
	DialectLegacy Dialect = iota
	// DialectBlock is the multi-line key/value form opened by a bare
	// "/// @ponder" line.
	DialectBlock
)

// String returns a short name for the dialect.
func (d Dialect) String() string {
	switch d {
	case DialectLegacy:
		return "legacy"
	case DialectBlock:
		return "block"
	}

	return "unknown"
}

// Span is an inclusive, 0-based line range.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether line falls within s.
func (s Span) Contains(line int) bool {
	return line >= s.Start && line <= s.End
}

// Record is one parsed annotation block.
type Record struct {
	// Preview locates the lightweight preview asset.
	Preview Reference
	// Detailed locates the full demo. Equal to Preview in the legacy
	// dialect.
	Detailed Reference
	// Description is the optional free-text label (block dialect only).
	Description string
	Dialect     Dialect
	Span        Span
}

// Match is the result of a [Parser.Lookup].
type Match struct {
	Record
	// Hover is the range over which the record is hoverable.
	Hover Span
}
