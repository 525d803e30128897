package scene

// Demo returns the sample scene: a red rectangle, a blue line, a filled
// green zig-zag and a filled green quad on a 400×400 black canvas.
func Demo() *Scene {
	return &Scene{
		Width:      400,
		Height:     400,
		Background: "black",
		Shapes: []ShapeSpec{
			{
				Type:   TypeRectangle,
				Anchor: [2]float64{50, 40},
				Width:  100,
				Height: 70,
				Color:  "#ff0000",
			},
			{
				Type:  TypeLine,
				Start: [2]float64{200, 200},
				End:   [2]float64{250, 230},
				Color: "#0000ff",
			},
			{
				Type:  TypePolygon,
				Color: "#00ff00",
				Points: [][2]float64{
					{20, 250}, {50, 350}, {80, 280}, {110, 350},
					{140, 250}, {110, 300}, {80, 250}, {50, 300},
				},
				Filled: true,
			},
			{
				Type:   TypePolygon,
				Color:  "#00ff00",
				Points: [][2]float64{{200, 40}, {200, 100}, {300, 100}, {300, 40}},
				Filled: true,
			},
		},
	}
}
