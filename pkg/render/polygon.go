package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/taigrr/pixmap/pkg/math2d"
)

// edge is a non-horizontal polygon side tracked by the scan-line fill.
type edge struct {
	yLimit       float64 // upper y bound, exclusive
	x            float64 // x at the current scan line
	slopeInverse float64 // change in x per scan line
}

// newEdge creates the edge from lower to upper. lower.Y must be strictly
// less than upper.Y.
func newEdge(lower, upper math2d.Vec2) edge {
	return edge{
		yLimit:       upper.Y,
		x:            lower.X,
		slopeInverse: (upper.X - lower.X) / (upper.Y - lower.Y),
	}
}

// FillPolygon fills the interior of the closed polygon through vertices with
// an active-edge-table scan-line sweep and the even-odd rule. The boundary is
// not part of the fill; draw it with DrawPolygonOutline. Polygons with fewer
// than three vertices fill nothing.
func FillPolygon(img *Image, vertices []math2d.Vec2, c Color) {
	n := len(vertices)
	if n < 3 {
		return
	}

	rows := img.Height()
	table := make([][]edge, rows)

	register := func(lower, upper math2d.Vec2) {
		e := newEdge(lower, upper)
		row := math.Floor(lower.Y)
		switch {
		case math.IsNaN(row) || row >= float64(rows):
			return
		case row < 0:
			// Starts above the image: join at row 0 as if it had been
			// stepped through the rows it skipped.
			if e.yLimit <= 0 {
				return
			}
			e.x -= row * e.slopeInverse
			table[0] = append(table[0], e)
		default:
			table[int(row)] = append(table[int(row)], e)
		}
	}

	// Register each side from its lower vertex only. Horizontal sides are
	// never registered, so every edge has a finite slopeInverse.
	for i, cur := range vertices {
		prev := vertices[(i+n-1)%n]
		next := vertices[(i+1)%n]
		if cur.Y < prev.Y {
			register(cur, prev)
		}
		if cur.Y < next.Y {
			register(cur, next)
		}
	}

	width := img.Width()
	var active []edge
	for y := range rows {
		fy := float64(y)

		kept := active[:0]
		for _, e := range active {
			e.x += e.slopeInverse
			if e.yLimit > fy {
				kept = append(kept, e)
			}
		}
		active = append(kept, table[y]...)

		slices.SortStableFunc(active, func(a, b edge) int {
			return cmp.Compare(a.x, b.x)
		})

		// Even-odd: inside between the 1st and 2nd crossing, the 3rd and
		// 4th, and so on. A trailing unmatched edge is ignored.
		for i := 0; i+1 < len(active); i += 2 {
			from := spanBound(active[i].x, width)
			to := spanBound(active[i+1].x, width)
			for x := from; x < to; x++ {
				img.Set(x, y, c)
			}
		}
	}

	if len(active) > 0 {
		Logger().Debug("polygon extends below image", "edges", len(active), "rows", rows)
	}
}

// spanBound rounds a crossing up to a pixel column clamped to [0, width].
func spanBound(x float64, width int) int {
	return min(max(math2d.Truncate(math.Ceil(x)), 0), width)
}

// DrawPolygonOutline draws lines between consecutive vertices and from the
// last vertex back to the first.
func DrawPolygonOutline(img *Image, vertices []math2d.Vec2, c Color) {
	for i, p := range vertices {
		DrawLine(img, p, vertices[(i+1)%len(vertices)], c)
	}
}
