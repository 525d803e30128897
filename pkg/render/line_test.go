package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/pixmap/pkg/math2d"
)

// drawnPixels returns the coordinates whose color is not black.
func drawnPixels(img *Image) map[[2]int]bool {
	set := make(map[[2]int]bool)
	for y := range img.Height() {
		for x := range img.Width() {
			if c, _ := img.Get(x, y); c != ColorBlack {
				set[[2]int{x, y}] = true
			}
		}
	}
	return set
}

func TestDrawLineHorizontal(t *testing.T) {
	img := newTestImage(t, 10, 10)
	DrawLine(img, math2d.V2(0, 0), math2d.V2(9, 0), ColorWhite)

	for y := range 10 {
		for x := range 10 {
			want := ColorBlack
			if y == 0 {
				want = ColorWhite
			}
			if got, _ := img.Get(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawLineSinglePixel(t *testing.T) {
	img := newTestImage(t, 10, 10)
	DrawLine(img, math2d.V2(4.7, 3.2), math2d.V2(4.1, 3.9), ColorRed)

	want := map[[2]int]bool{{4, 3}: true}
	if diff := cmp.Diff(want, drawnPixels(img)); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawLineShapes(t *testing.T) {
	tests := []struct {
		name       string
		start, end math2d.Vec2
		want       [][2]int
	}{
		{"vertical", math2d.V2(2, 1), math2d.V2(2, 4), [][2]int{{2, 1}, {2, 2}, {2, 3}, {2, 4}}},
		{"diagonal", math2d.V2(0, 0), math2d.V2(3, 3), [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"anti-diagonal", math2d.V2(3, 0), math2d.V2(0, 3), [][2]int{{3, 0}, {2, 1}, {1, 2}, {0, 3}}},
		{"shallow", math2d.V2(0, 0), math2d.V2(3, 2), [][2]int{{0, 0}, {1, 1}, {2, 1}, {3, 2}}},
		{"steep", math2d.V2(0, 0), math2d.V2(2, 3), [][2]int{{0, 0}, {1, 1}, {1, 2}, {2, 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := newTestImage(t, 8, 8)
			DrawLine(img, tc.start, tc.end, ColorWhite)

			want := make(map[[2]int]bool)
			for _, p := range tc.want {
				want[p] = true
			}
			if diff := cmp.Diff(want, drawnPixels(img)); diff != "" {
				t.Errorf("pixels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawLineSymmetry(t *testing.T) {
	segments := [][2]math2d.Vec2{
		{math2d.V2(0, 0), math2d.V2(2, 1)},
		{math2d.V2(1, 7), math2d.V2(18, 2)},
		{math2d.V2(3, 3), math2d.V2(5, 19)},
		{math2d.V2(19, 0), math2d.V2(0, 13)},
		{math2d.V2(10, 10), math2d.V2(10, 10)},
		{math2d.V2(-5, 4), math2d.V2(25, 9)},
		{math2d.V2(4, -10), math2d.V2(11, 30)},
		{math2d.V2(0.9, 0.2), math2d.V2(17.6, 6.99)},
	}

	for _, s := range segments {
		forward := newTestImage(t, 20, 20)
		backward := newTestImage(t, 20, 20)
		DrawLine(forward, s[0], s[1], ColorWhite)
		DrawLine(backward, s[1], s[0], ColorWhite)

		if diff := cmp.Diff(forward.Pixels(), backward.Pixels()); diff != "" {
			t.Errorf("DrawLine(%v, %v) differs from reversed (-forward +backward):\n%s", s[0], s[1], diff)
		}
	}
}

func TestDrawLineConnected(t *testing.T) {
	// A digital line covers exactly max(dx, dy)+1 pixels, one per step
	// along the major axis.
	segments := [][4]int{
		{0, 0, 19, 7}, {2, 18, 9, 0}, {19, 19, 0, 0}, {5, 5, 5, 15}, {0, 10, 19, 10},
	}
	for _, s := range segments {
		img := newTestImage(t, 20, 20)
		DrawLine(img, math2d.V2(float64(s[0]), float64(s[1])), math2d.V2(float64(s[2]), float64(s[3])), ColorWhite)

		want := max(abs(s[2]-s[0]), abs(s[3]-s[1])) + 1
		if got := len(drawnPixels(img)); got != want {
			t.Errorf("line %v drew %d pixels, want %d", s, got, want)
		}
		if c, _ := img.Get(s[0], s[1]); c != ColorWhite {
			t.Errorf("line %v: start point not drawn", s)
		}
		if c, _ := img.Get(s[2], s[3]); c != ColorWhite {
			t.Errorf("line %v: end point not drawn", s)
		}
	}
}

func TestDrawLinePartiallyOffCanvas(t *testing.T) {
	img := newTestImage(t, 10, 10)
	DrawLine(img, math2d.V2(-5, 2), math2d.V2(14, 2), ColorGreen)

	for x := range 10 {
		if c, _ := img.Get(x, 2); c != ColorGreen {
			t.Errorf("pixel (%d, 2) = %v, want green", x, c)
		}
	}
	if got := len(drawnPixels(img)); got != 10 {
		t.Errorf("drew %d pixels, want 10", got)
	}
}

func TestDrawLineExtremeInput(t *testing.T) {
	img := newTestImage(t, 10, 10)
	inputs := []math2d.Vec2{
		math2d.V2(math.NaN(), 3),
		math2d.V2(math.Inf(1), math.Inf(-1)),
		math2d.V2(-1e300, 1e300),
	}
	for _, p := range inputs {
		DrawLine(img, p, math2d.V2(5, 5), ColorWhite)
	}
	if c, _ := img.Get(5, 5); c != ColorWhite {
		t.Error("finite endpoint should still be drawn")
	}
}

func BenchmarkDrawLine(b *testing.B) {
	img := newTestImage(b, 400, 400)
	start, end := math2d.V2(3, 17), math2d.V2(391, 288)

	for b.Loop() {
		DrawLine(img, start, end, ColorWhite)
	}
}
