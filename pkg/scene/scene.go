// Package scene describes drawings as data. A scene holds a canvas size, a
// background color and an ordered list of shapes, and can be read from TOML
// or YAML files.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/taigrr/pixmap/pkg/math2d"
	"github.com/taigrr/pixmap/pkg/render"
)

var (
	// ErrUnknownFormat is returned for scene files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown scene format")
	// ErrUnknownShape is returned for shape types other than line, rectangle
	// and polygon.
	ErrUnknownShape = errors.New("unknown shape type")
	// ErrInvalidScene is returned by Validate.
	ErrInvalidScene = errors.New("invalid scene")
)

// Format is a scene file encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Shape types.
const (
	TypeLine      = "line"
	TypeRectangle = "rectangle"
	TypePolygon   = "polygon"
)

// Scene is a canvas and the shapes drawn onto it, in order.
type Scene struct {
	Width      int         `toml:"width" yaml:"width"`
	Height     int         `toml:"height" yaml:"height"`
	Background string      `toml:"background,omitempty" yaml:"background,omitempty"`
	Shapes     []ShapeSpec `toml:"shapes" yaml:"shapes"`
}

// ShapeSpec describes one shape. Which fields apply depends on Type:
// lines use Start and End, rectangles use Anchor, Width and Height, and
// polygons use Points and Filled. Color defaults to black.
type ShapeSpec struct {
	Type   string       `toml:"type" yaml:"type"`
	Color  string       `toml:"color,omitempty" yaml:"color,omitempty"`
	Start  [2]float64   `toml:"start,omitempty" yaml:"start,omitempty"`
	End    [2]float64   `toml:"end,omitempty" yaml:"end,omitempty"`
	Anchor [2]float64   `toml:"anchor,omitempty" yaml:"anchor,omitempty"`
	Width  int          `toml:"width,omitempty" yaml:"width,omitempty"`
	Height int          `toml:"height,omitempty" yaml:"height,omitempty"`
	Points [][2]float64 `toml:"points,omitempty" yaml:"points,omitempty"`
	Filled bool         `toml:"filled,omitempty" yaml:"filled,omitempty"`
}

// Parse decodes a scene. Unknown fields are rejected.
func Parse(data []byte, f Format) (*Scene, error) {
	var s Scene
	switch f {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode scene: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	return &s, nil
}

// Load reads a scene file, picking the format from its extension.
func Load(path string) (*Scene, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Marshal encodes the scene.
func (s *Scene) Marshal(f Format) ([]byte, error) {
	switch f {
	case TOML:
		return toml.Marshal(s)
	case YAML:
		return yaml.Marshal(s)
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
}

// Validate checks the canvas size, colors and shape types without drawing.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d: %w", ErrInvalidScene, s.Width, s.Height, render.ErrInvalidDimensions)
	}
	if _, err := s.background(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	if _, err := s.Build(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}

func (s *Scene) background() (render.Color, error) {
	if s.Background == "" {
		return render.ColorBlack, nil
	}
	c, err := render.ParseColor(s.Background)
	if err != nil {
		return render.Color{}, fmt.Errorf("background: %w", err)
	}
	return c, nil
}

// Build turns the shape specs into drawable shapes, in order.
func (s *Scene) Build() ([]render.Shape, error) {
	shapes := make([]render.Shape, 0, len(s.Shapes))
	for i, spec := range s.Shapes {
		shape, err := spec.Shape()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// Shape builds the drawable shape described by spec.
func (spec ShapeSpec) Shape() (render.Shape, error) {
	c := render.ColorBlack
	if spec.Color != "" {
		var err error
		if c, err = render.ParseColor(spec.Color); err != nil {
			return nil, err
		}
	}

	switch strings.ToLower(spec.Type) {
	case TypeLine:
		return render.NewLine(vec(spec.Start), vec(spec.End)).WithColor(c), nil
	case TypeRectangle:
		return render.NewRectangle(vec(spec.Anchor), spec.Width, spec.Height, c), nil
	case TypePolygon:
		points := make([]math2d.Vec2, len(spec.Points))
		for i, p := range spec.Points {
			points[i] = vec(p)
		}
		p := render.NewPolygon(points...)
		p.SetColor(c)
		p.SetFilled(spec.Filled)
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownShape, spec.Type)
}

func vec(p [2]float64) math2d.Vec2 {
	return math2d.V2(p[0], p[1])
}

// Render validates the scene and draws it onto a new image.
func (s *Scene) Render() (*render.Image, error) {
	img, err := render.NewImage(s.Width, s.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	bg, err := s.background()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	shapes, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	img.Fill(bg)
	img.Draw(shapes...)
	render.Logger().Debug("rendered scene", "width", s.Width, "height", s.Height, "shapes", len(shapes))
	return img, nil
}
