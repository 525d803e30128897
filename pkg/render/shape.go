package render

import (
	"slices"

	"github.com/taigrr/pixmap/pkg/math2d"
)

// Shape is anything that can draw itself into an image.
// Shapes never keep a reference to the image they draw into.
type Shape interface {
	Draw(img *Image)
}

// Line is a straight segment with a color.
type Line struct {
	start, end math2d.Vec2
	color      Color
}

// NewLine creates a black line from start to end.
func NewLine(start, end math2d.Vec2) Line {
	return Line{start: start, end: end}
}

// WithColor returns a copy of the line with the given color.
func (l Line) WithColor(c Color) Line {
	l.color = c
	return l
}

func (l Line) Start() math2d.Vec2 { return l.start }
func (l Line) End() math2d.Vec2   { return l.end }
func (l Line) Color() Color       { return l.color }

// Draw implements Shape.
func (l Line) Draw(img *Image) {
	DrawLine(img, l.start, l.end, l.color)
}

// Rectangle is a solid axis-aligned rectangle whose top-left corner is anchor.
type Rectangle struct {
	anchor        math2d.Vec2
	width, height int
	color         Color
}

// NewRectangle creates a filled rectangle.
func NewRectangle(anchor math2d.Vec2, width, height int, c Color) Rectangle {
	return Rectangle{anchor: anchor, width: width, height: height, color: c}
}

func (r Rectangle) Anchor() math2d.Vec2 { return r.anchor }
func (r Rectangle) Width() int          { return r.width }
func (r Rectangle) Height() int         { return r.height }
func (r Rectangle) Color() Color        { return r.color }

// Draw implements Shape. Only the part overlapping the image is visited.
func (r Rectangle) Draw(img *Image) {
	x0, y0 := r.anchor.Trunc()
	minX, maxX := max(x0, 0), min(x0+r.width, img.Width())
	minY, maxY := max(y0, 0), min(y0+r.height, img.Height())
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			img.Set(x, y, r.color)
		}
	}
}

// Polygon is a closed polygon, optionally filled.
type Polygon struct {
	points []math2d.Vec2
	filled bool
	color  Color
}

// NewPolygon creates an unfilled black polygon through points.
func NewPolygon(points ...math2d.Vec2) *Polygon {
	return &Polygon{points: slices.Clone(points)}
}

// SetFilled sets whether the interior is filled when drawn.
func (p *Polygon) SetFilled(filled bool) {
	p.filled = filled
}

// SetColor sets the color used for both outline and fill.
func (p *Polygon) SetColor(c Color) {
	p.color = c
}

// Points returns a copy of the vertices.
func (p *Polygon) Points() []math2d.Vec2 { return slices.Clone(p.points) }
func (p *Polygon) Filled() bool          { return p.filled }
func (p *Polygon) Color() Color          { return p.color }

// Draw implements Shape. The fill runs first and the outline is drawn on top.
func (p *Polygon) Draw(img *Image) {
	if p.filled {
		FillPolygon(img, p.points, p.color)
	}
	DrawPolygonOutline(img, p.points, p.color)
}
