package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taigrr/pixmap/pkg/models"
	"github.com/taigrr/pixmap/pkg/ppm"
	"github.com/taigrr/pixmap/pkg/render"
	"github.com/taigrr/pixmap/pkg/scene"
)

func newRenderCmd() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "render [scene.toml|scene.yaml]",
		Short: "Render a scene file, or the demo scene, to a PPM image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ppm.ParseFormat(format)
			if err != nil {
				return err
			}

			s := scene.Demo()
			if len(args) == 1 {
				if s, err = scene.Load(args[0]); err != nil {
					return err
				}
			}

			img, err := s.Render()
			if err != nil {
				return err
			}
			if err := ppm.WriteFile(output, img, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %s)\n", output, img.Width(), img.Height(), f)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.ppm", "output file")
	cmd.Flags().StringVar(&format, "format", "p6", "output format (p3 or p6)")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the demo scene as TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := scene.FormatFromPath("scene." + strings.ToLower(format))
			if err != nil {
				return err
			}
			data, err := scene.Demo().Marshal(f)
			if err != nil {
				return fmt.Errorf("encode scene: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "scene format (toml or yaml)")
	return cmd
}

func newConvertCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <in.ppm> <out.ppm>",
		Short: "Decode a P6 image and re-encode it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ppm.ParseFormat(format)
			if err != nil {
				return err
			}
			img, err := ppm.ReadFile(args[0])
			if err != nil {
				return err
			}
			return ppm.WriteFile(args[1], img, f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "p3", "output format (p3 or p6)")
	return cmd
}

func newMeshCmd() *cobra.Command {
	var (
		output, format, size, color, background string
		margin                                  int
		fill                                    bool
	)

	cmd := &cobra.Command{
		Use:   "mesh <model.glb|model.gltf>",
		Short: "Project a glTF mesh onto an image and draw its triangles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ppm.ParseFormat(format)
			if err != nil {
				return err
			}
			width, height, err := parseSize(size)
			if err != nil {
				return err
			}
			bg, err := render.ParseColor(background)
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			mesh, err := models.Load(args[0])
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}

			var polys []*render.Polygon
			if color == "" {
				polys = mesh.MaterialPolygons(width, height, margin, render.ColorWhite, fill)
			} else {
				c, err := render.ParseColor(color)
				if err != nil {
					return fmt.Errorf("color: %w", err)
				}
				polys = mesh.Polygons(width, height, margin, c, fill)
			}

			img, err := render.NewImage(width, height)
			if err != nil {
				return err
			}
			img.Fill(bg)
			for _, p := range polys {
				img.Draw(p)
			}

			if err := ppm.WriteFile(output, img, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d triangles)\n", output, mesh.TriangleCount())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "mesh.ppm", "output file")
	cmd.Flags().StringVar(&format, "format", "p6", "output format (p3 or p6)")
	cmd.Flags().StringVar(&size, "size", "400x400", "image size as WIDTHxHEIGHT")
	cmd.Flags().StringVar(&color, "color", "", "triangle color (default: material colors)")
	cmd.Flags().StringVar(&background, "bg", "black", "background color")
	cmd.Flags().IntVar(&margin, "margin", 10, "padding around the mesh in pixels")
	cmd.Flags().BoolVar(&fill, "fill", false, "fill triangles")
	return cmd
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	if width, err = strconv.Atoi(w); err != nil {
		return 0, 0, fmt.Errorf("invalid width %q: %w", w, err)
	}
	if height, err = strconv.Atoi(h); err != nil {
		return 0, 0, fmt.Errorf("invalid height %q: %w", h, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %s", render.ErrInvalidDimensions, s)
	}
	return width, height, nil
}
