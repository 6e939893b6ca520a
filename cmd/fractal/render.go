package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/fractal"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Compute a fractal and write it as an image",
	Long: `Render computes the escape-time field for the chosen variant and
writes it to the output file. The extension picks the format: .png gets
a palette-mapped color image, .pgm gets the raw field as a 16-bit
grayscale map.

Every flag can also come from the config file (under "render:") or from
a FRACTAL_RENDER_* environment variable; flags win.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	f := renderCmd.Flags()
	f.IntP("width", "W", 1024, "image width in pixels")
	f.IntP("height", "H", 1024, "image height in pixels")
	f.IntP("iterations", "i", 256, "iteration cap per pixel")
	f.String("variant", "mandelbrot", "fractal variant (see 'fractal variants')")
	f.String("variant-args", "", `variant arguments, e.g. "-0.8,0.156" for julia`)
	f.Float64("x-min", 0, "left edge of the window (0,0,0,0 = variant viewport)")
	f.Float64("x-max", 0, "right edge of the window")
	f.Float64("y-min", 0, "bottom edge of the window")
	f.Float64("y-max", 0, "top edge of the window")
	f.Float64("horizon", 0, "escape horizon (0 = default 2^36)")
	f.IntP("workers", "w", 0, "parallel workers (0 = all CPUs)")
	f.IntP("tasks", "t", 0, "row-span tasks (0 = one per worker)")
	f.Bool("processes", false, "compute in worker processes over shared memory (linux)")
	f.StringP("output", "o", "fractal.png", "output file (.png or .pgm)")
	f.String("palette", "fire", "palette for PNG output: fire, ice, gray")
	f.IntP("supersample", "s", 1, "compute at s times the size, then downscale")

	for flag, key := range map[string]string{
		"width":        "render.width",
		"height":       "render.height",
		"iterations":   "render.iterations",
		"variant":      "render.variant",
		"variant-args": "render.variant_args",
		"x-min":        "render.x_min",
		"x-max":        "render.x_max",
		"y-min":        "render.y_min",
		"y-max":        "render.y_max",
		"horizon":      "render.horizon",
		"workers":      "render.workers",
		"tasks":        "render.tasks",
		"processes":    "render.processes",
		"output":       "render.output",
		"palette":      "render.palette",
		"supersample":  "render.supersample",
	} {
		if err := viper.BindPFlag(key, f.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rc := cfg.Render

	fract, err := fractal.Lookup(rc.Variant, rc.VariantArgs)
	if err != nil {
		return err
	}
	if _, ok := palettes[rc.Palette]; !ok {
		return fmt.Errorf("unknown palette %q (have %s)", rc.Palette, strings.Join(paletteNames(), ", "))
	}
	ext := strings.ToLower(filepath.Ext(rc.Output))
	if ext != ".png" && ext != ".pgm" {
		return fmt.Errorf("unsupported output format %q (use .png or .pgm)", ext)
	}

	opts := []fractal.Option{
		fractal.WithWorkers(rc.Workers),
		fractal.WithTasks(rc.Tasks),
	}
	if rc.Processes {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve worker executable: %w", err)
		}
		opts = append(opts, fractal.WithWorkerProcesses(exe, "worker"))
	}

	scale := rc.Supersample
	if scale < 1 {
		scale = 1
	}
	if ext == ".pgm" && scale > 1 {
		return fmt.Errorf("supersampling applies to PNG output only")
	}
	params := fractal.Params{
		Width:      rc.Width * scale,
		Height:     rc.Height * scale,
		Iterations: rc.Iterations,
		X:          fractal.Range{Min: rc.XMin, Max: rc.XMax},
		Y:          fractal.Range{Min: rc.YMin, Max: rc.YMax},
		Horizon:    rc.Horizon,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	field, err := fractal.New(fract, opts...).Compute(ctx, params)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	switch ext {
	case ".png":
		img := rasterize(field, palettes[rc.Palette])
		if scale > 1 {
			img = downscale(img, rc.Width, rc.Height)
		}
		err = writePNG(rc.Output, img)
	case ".pgm":
		err = writePGM(rc.Output, field)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %dx%d in %s\n",
		rc.Output, fract.Name(), rc.Width, rc.Height, elapsed.Round(time.Millisecond))
	return nil
}
