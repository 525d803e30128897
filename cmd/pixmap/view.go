package main

import (
	"context"
	"fmt"
	"image"
	"math"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/pixmap/pkg/ppm"
	"github.com/taigrr/pixmap/pkg/render"
)

func newViewCmd() *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "view <image.ppm>",
		Short: "Show a PPM image in the terminal",
		Long: `Show a PPM image in the terminal using half-block characters.

Controls:
  Arrows/WASD  Pan
  R            Reset view
  Esc/Q        Quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("invalid fps %d", fps)
			}
			img, err := ppm.ReadFile(args[0])
			if err != nil {
				return err
			}
			render.Logger().Debug("viewing image", "file", filepath.Base(args[0]),
				"width", img.Width(), "height", img.Height())
			return runViewer(cmd.Context(), img, fps)
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 60, "target frames per second")
	return cmd
}

// PanAxis tracks position and velocity along one axis with spring decay.
type PanAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewPanAxis creates an axis whose velocity settles without overshoot.
func NewPanAxis(fps int) PanAxis {
	return PanAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position, keeps position in [0, limit] and
// decays velocity toward 0.
func (a *PanAxis) Update(limit float64) {
	a.Position += a.Velocity
	if a.Position < 0 || a.Position > limit {
		a.Position = math.Max(0, math.Min(a.Position, limit))
		a.Velocity, a.velAccel = 0, 0
		return
	}
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// PanState is the viewer's scroll offset into the image, in pixels.
type PanState struct {
	mu   sync.Mutex
	X, Y PanAxis
	fps  int
}

func NewPanState(fps int) *PanState {
	return &PanState{X: NewPanAxis(fps), Y: NewPanAxis(fps), fps: fps}
}

// ApplyImpulse adds velocity in pixels per frame.
func (p *PanState) ApplyImpulse(dx, dy float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.X.Velocity += dx
	p.Y.Velocity += dy
}

func (p *PanState) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.X = NewPanAxis(p.fps)
	p.Y = NewPanAxis(p.fps)
}

// Update advances one frame and returns the offset to draw at. maxX and
// maxY are the largest offsets that still keep the image on screen.
func (p *PanState) Update(maxX, maxY int) image.Point {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.X.Update(float64(max(maxX, 0)))
	p.Y.Update(float64(max(maxY, 0)))
	return image.Pt(int(math.Round(p.X.Position)), int(math.Round(p.Y.Position)))
}

// viewport is the terminal renderer and its size, replaced on resize.
type viewport struct {
	mu       sync.Mutex
	term     *uv.Terminal
	renderer *render.TerminalRenderer
}

func (v *viewport) resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.term.Erase()
	v.term.Resize(width, height)
	v.renderer = render.NewTerminalRenderer(v.term, width, height)
}

func (v *viewport) draw(img *render.Image, pan *PanState) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	w, h := v.renderer.ViewportSize()
	offset := pan.Update(img.Width()-w, img.Height()-h)
	v.renderer.Render(img, offset)
	return v.renderer.Flush()
}

func runViewer(ctx context.Context, img *render.Image, fps int) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	vp := &viewport{term: term, renderer: render.NewTerminalRenderer(term, width, height)}
	pan := NewPanState(fps)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pixels per frame added by one key press.
	const impulse = 2.0

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				vp.resize(ev.Width, ev.Height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "q", "ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					pan.Reset()
				case ev.MatchString("w", "up"):
					pan.ApplyImpulse(0, -impulse)
				case ev.MatchString("s", "down"):
					pan.ApplyImpulse(0, impulse)
				case ev.MatchString("a", "left"):
					pan.ApplyImpulse(-impulse, 0)
				case ev.MatchString("d", "right"):
					pan.ApplyImpulse(impulse, 0)
				}
			}
		}
	}()

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(fps)
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		if err := vp.draw(img, pan); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}
