// Package preview renders annotation preview assets in a terminal.
//
// Images are drawn with ANSI 24-bit colors on the "▀" (upper half block)
// character, so every terminal cell shows two vertically stacked pixels:
// the top pixel is the foreground color and the bottom pixel the
// background.
//
// Supported formats are PNG, JPEG, GIF (first frame), BMP, TIFF and WebP.
// Local references (file:// URIs or plain paths) are read from disk and
// remote http(s) references are fetched.
//
// The pixel width configured for editor hovers is mapped to terminal
// columns with [Columns], so one setting sizes both renderings.
package preview
