package render

import (
	"image"

	uv "github.com/charmbracelet/ultraviolet"
)

// Render draws the image onto a terminal screen, two image rows per terminal
// row, using the upper half block (▀) with fg = top pixel and bg = bottom
// pixel. offset is the image pixel shown at the top-left corner of area.
func (img *Image) Render(scr uv.Screen, area uv.Rectangle, offset image.Point) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := offset.Y + (row-area.Min.Y)*2
		for col := area.Min.X; col < area.Max.X; col++ {
			x := offset.X + col - area.Min.X
			top, okTop := img.Get(x, topY)
			bottom, okBottom := img.Get(x, topY+1)
			scr.SetCell(col, row, halfBlock(top, okTop, bottom, okBottom))
		}
	}
}

// halfBlock builds the cell for a pair of vertically stacked pixels. Missing
// pixels leave the terminal's default color showing.
func halfBlock(top Color, okTop bool, bottom Color, okBottom bool) *uv.Cell {
	if !okTop {
		return &uv.Cell{Content: " ", Width: 1}
	}
	cell := &uv.Cell{
		Content: "▀",
		Width:   1,
		Style:   uv.Style{Fg: top},
	}
	if okBottom {
		cell.Style.Bg = bottom
	}
	return cell
}

// TerminalRenderer presents images on a terminal.
type TerminalRenderer struct {
	term   *uv.Terminal
	width  int // Terminal columns
	height int // Terminal rows
}

// NewTerminalRenderer creates a renderer for a terminal of the given size.
func NewTerminalRenderer(term *uv.Terminal, width, height int) *TerminalRenderer {
	return &TerminalRenderer{term: term, width: width, height: height}
}

// ViewportSize returns how many image pixels fit on screen.
func (r *TerminalRenderer) ViewportSize() (width, height int) {
	return r.width, r.height * 2
}

// Render draws img with offset at the top-left corner of the terminal.
func (r *TerminalRenderer) Render(img *Image, offset image.Point) {
	img.Render(r.term, uv.Rect(0, 0, r.width, r.height), offset)
}

// Flush writes pending changes to the terminal.
func (r *TerminalRenderer) Flush() error {
	return r.term.Display()
}
