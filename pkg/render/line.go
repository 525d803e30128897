package render

import "github.com/taigrr/pixmap/pkg/math2d"

// DrawLine draws the segment from start to end with Bresenham's algorithm,
// operating on the truncated integer coordinates of both endpoints.
// Both endpoints are drawn; start == end draws one pixel. Pixels outside the
// image are dropped by Set. Drawing (a, b) and (b, a) touches the same pixels.
func DrawLine(img *Image, start, end math2d.Vec2, c Color) {
	x0, y0 := start.Trunc()
	x1, y1 := end.Trunc()

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	// Always walk the major axis in increasing order so the error term
	// resolves ties the same way regardless of endpoint order.
	if (dx >= dy && x0 > x1) || (dx < dy && y0 > y1) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)

	x, y := x0, y0
	if dx >= dy {
		e := 2*dy - dx
		for range dx {
			img.Set(x, y, c)
			x += sx
			if e <= 0 {
				e += 2 * dy
			} else {
				y += sy
				e += 2*dy - 2*dx
			}
		}
	} else {
		e := 2*dx - dy
		for range dy {
			img.Set(x, y, c)
			y += sy
			if e <= 0 {
				e += 2 * dx
			} else {
				x += sx
				e += 2*dx - 2*dy
			}
		}
	}
	img.Set(x, y, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
