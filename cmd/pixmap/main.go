// pixmap - 2D raster graphics from the command line.
// Render scene files and glTF meshes to PPM, convert between PPM variants
// and preview images in the terminal.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/pixmap/pkg/render"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "pixmap",
		Short: "Draw lines, rectangles and polygons into PPM images",
		Long: `pixmap rasterizes 2D shapes into in-memory images and writes them
as portable pixmaps (P3 or P6).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			render.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRenderCmd(),
		newDemoCmd(),
		newConvertCmd(),
		newMeshCmd(),
		newViewCmd(),
	)
	return root
}
