package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// CellWidth is the assumed width of a terminal cell in pixels.
const CellWidth = 8

// Columns converts a pixel width into terminal columns. The result is at
// least 1.
func Columns(pixels int) int {
	return max(1, pixels/CellWidth)
}

// Resize scales img to cols pixels wide, keeping its aspect ratio. The
// height is rounded up to an even number of pixels so every terminal row
// has both a top and a bottom pixel.
func Resize(img image.Image, cols int) *image.RGBA {
	src := img.Bounds()

	cols = max(1, cols)

	h := 2
	if src.Dx() > 0 {
		h = max(2, (src.Dy()*cols+src.Dx()-1)/src.Dx())
	}

	h += h % 2

	dst := image.NewRGBA(image.Rect(0, 0, cols, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)

	return dst
}

// Render draws img as half-block art exactly cols cells wide.
func Render(img image.Image, cols int) string {
	scaled := Resize(img, cols)

	var sb strings.Builder

	writeHalfBlocks(&sb, scaled)

	return sb.String()
}

// writeHalfBlocks writes one line per pair of pixel rows. Each line ends
// with a reset sequence and a newline.
func writeHalfBlocks(sb *strings.Builder, img *image.RGBA) {
	b := img.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)

			var bot color.RGBA
			if y+1 < b.Max.Y {
				bot = img.RGBAAt(x, y+1)
			}

			fmt.Fprintf(sb, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}

		sb.WriteString("\033[0m\n")
	}
}
