// Package annotation recognizes ponder annotation comment blocks in source
// documents and resolves the demo references they carry.
//
// Two dialects are supported. The legacy dialect is a single line:
//
//	/// @ponder assets/demo.gif
//
// The block dialect opens with a bare @ponder line and is followed by up to
// four key/value comment lines:
//
//	/// @ponder
//	/// @preview assets/demo.png
//	/// @detailed https://example.com/demo.mp4
//	/// @description Drag to reorder
//
// A block needs at least one of @preview or @detailed. A missing preview
// falls back to the detailed reference and vice versa. The opener and its
// field lines must each start with "///" (after indentation). Other "///"
// lines in the window, including further @ponder lines, are absorbed into
// the block. A legacy annotation may also sit in a trailing comment.
//
// # Resolution
//
// References beginning with a web scheme (http:// or https://) are kept
// verbatim, as is any other scheme:// locator. Every other token is a path
// relative to the document's project root, which is obtained from a
// [Resolver]. When no resolver is set or no root is found, the token is
// passed through unchanged. Only legacy tokens and @preview tokens are
// resolved; @detailed tokens are always kept verbatim.
//
// # Query Modes
//
// [Parser.Scan] enumerates every record in a document, in order and without
// overlap. [Parser.Lookup] finds the record under a single line, looking
// back up to four lines so a query may land anywhere inside a block.
//
// A [Parser] has no mutable state; a single value may serve any number of
// concurrent callers.
package annotation
