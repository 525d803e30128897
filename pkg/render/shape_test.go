package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/pixmap/pkg/math2d"
)

func TestNewLine(t *testing.T) {
	start, end := math2d.V2(10, 20), math2d.V2(15, 10)

	l := NewLine(start, end)
	if l.Start() != start || l.End() != end || l.Color() != ColorBlack {
		t.Errorf("NewLine = %+v, want start %v end %v black", l, start, end)
	}

	colored := l.WithColor(RGB(255, 42, 17))
	if colored.Color() != RGB(255, 42, 17) {
		t.Errorf("WithColor color = %v", colored.Color())
	}
	if l.Color() != ColorBlack {
		t.Error("WithColor should not modify the receiver")
	}
}

func TestLineDraw(t *testing.T) {
	img := newTestImage(t, 10, 10)
	img.Draw(NewLine(math2d.V2(0, 0), math2d.V2(9, 0)).WithColor(ColorBlue))

	if diff := cmp.Diff(rectSet(0, 0, 10, 1), drawnPixels(img)); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}

func TestRectangleDraw(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
		want map[[2]int]bool
	}{
		{"inside", NewRectangle(math2d.V2(2, 3), 4, 2, ColorRed), rectSet(2, 3, 6, 5)},
		{"fractional anchor", NewRectangle(math2d.V2(2.9, 3.1), 1, 1, ColorRed), rectSet(2, 3, 3, 4)},
		{"clipped", NewRectangle(math2d.V2(-3, 7), 5, 10, ColorRed), rectSet(0, 7, 2, 10)},
		{"off canvas", NewRectangle(math2d.V2(20, 20), 5, 5, ColorRed), rectSet(0, 0, 0, 0)},
		{"empty", NewRectangle(math2d.V2(2, 2), 0, 5, ColorRed), rectSet(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := newTestImage(t, 10, 10)
			tc.rect.Draw(img)
			if diff := cmp.Diff(tc.want, drawnPixels(img)); diff != "" {
				t.Errorf("rectangle mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRectangleAccessors(t *testing.T) {
	r := NewRectangle(math2d.V2(50, 40), 100, 70, ColorRed)
	if r.Anchor() != math2d.V2(50, 40) || r.Width() != 100 || r.Height() != 70 || r.Color() != ColorRed {
		t.Errorf("unexpected rectangle %+v", r)
	}
}

func TestNewPolygon(t *testing.T) {
	points := []math2d.Vec2{math2d.V2(2, 10), math2d.V2(10, 15), math2d.V2(16, 20)}
	p := NewPolygon(points...)

	if diff := cmp.Diff(points, p.Points()); diff != "" {
		t.Errorf("Points() mismatch (-want +got):\n%s", diff)
	}
	if p.Filled() {
		t.Error("new polygon should not be filled")
	}
	if p.Color() != ColorBlack {
		t.Errorf("new polygon color = %v, want black", p.Color())
	}

	points[0] = math2d.V2(99, 99)
	if p.Points()[0] == points[0] {
		t.Error("polygon should copy its points")
	}
}

func TestPolygonSetters(t *testing.T) {
	p := NewPolygon()

	p.SetFilled(true)
	if !p.Filled() {
		t.Error("SetFilled(true) did not take effect")
	}
	p.SetFilled(false)
	if p.Filled() {
		t.Error("SetFilled(false) did not take effect")
	}

	p.SetColor(RGB(17, 42, 137))
	if p.Color() != RGB(17, 42, 137) {
		t.Errorf("Color() = %v, want (17,42,137)", p.Color())
	}
}

func TestPolygonUnfilledDrawsOutlineOnly(t *testing.T) {
	img := newTestImage(t, 10, 10)
	p := NewPolygon(math2d.V2(1, 1), math2d.V2(1, 6), math2d.V2(6, 6), math2d.V2(6, 1))
	p.SetColor(ColorWhite)
	p.Draw(img)

	if c, _ := img.Get(3, 3); c != ColorBlack {
		t.Errorf("interior pixel = %v, want black", c)
	}
	for _, corner := range [][2]int{{1, 1}, {1, 6}, {6, 6}, {6, 1}} {
		if c, _ := img.Get(corner[0], corner[1]); c != ColorWhite {
			t.Errorf("corner %v = %v, want white", corner, c)
		}
	}

	p.SetFilled(true)
	p.Draw(img)
	if diff := cmp.Diff(rectSet(1, 1, 7, 7), drawnPixels(img)); diff != "" {
		t.Errorf("filled polygon mismatch (-want +got):\n%s", diff)
	}
}

func TestImageDrawOrder(t *testing.T) {
	img := newTestImage(t, 5, 5)
	img.Draw(
		NewRectangle(math2d.V2(0, 0), 5, 5, ColorRed),
		NewLine(math2d.V2(0, 2), math2d.V2(4, 2)).WithColor(ColorBlue),
	)

	if c, _ := img.Get(2, 2); c != ColorBlue {
		t.Errorf("later shape should draw on top, got %v", c)
	}
	if c, _ := img.Get(2, 1); c != ColorRed {
		t.Errorf("pixel (2, 1) = %v, want red", c)
	}
}
