package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/paletteedit/internal/swatch"
	"github.com/MeKo-Tech/paletteedit/internal/worker"
)

var renderCmd = &cobra.Command{
	Use:   "render [palette files...]",
	Short: "Render palettes as PNG swatch sheets",
	Long: `Render reads palettes (files of hex colors) and writes one PNG swatch
sheet per input. Multiple inputs are rendered in parallel.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("output-dir", ".", "Output directory for swatch sheets")
	renderCmd.Flags().Int("cell-size", 24, "Swatch edge length in pixels")
	renderCmd.Flags().Int("columns", 16, "Swatches per row")
	renderCmd.Flags().Int("scale", 1, "Nearest-neighbor upscale factor")
	renderCmd.Flags().Bool("labels", false, "Draw entry indices on the sheet")
	renderCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"render.output_dir", "output-dir"},
		{"render.cell_size", "cell-size"},
		{"render.columns", "columns"},
		{"render.scale", "scale"},
		{"render.labels", "labels"},
		{"render.workers", "workers"},
	}
	for _, b := range bindFlags {
		if err := viper.BindPFlag(b.key, renderCmd.Flags().Lookup(b.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}
}

// sheetRenderer writes swatch sheets into the output directory.
type sheetRenderer struct {
	outputDir string
	opts      swatch.Options
}

func (r *sheetRenderer) Render(ctx context.Context, task worker.Task) (string, error) {
	path := filepath.Join(r.outputDir, task.Name+".png")
	if err := swatch.WritePNG(path, task.Palette, r.opts); err != nil {
		return "", err
	}
	return path, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	outputDir := viper.GetString("render.output_dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	tasks := make([]worker.Task, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read palette %s: %w", path, err)
		}
		p, err := parsePalette(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		tasks = append(tasks, worker.Task{Name: name, Palette: p})
	}

	workers := viper.GetInt("render.workers")
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := worker.New(worker.Config{
		Workers: workers,
		Renderer: &sheetRenderer{
			outputDir: outputDir,
			opts: swatch.Options{
				CellSize: viper.GetInt("render.cell_size"),
				Columns:  viper.GetInt("render.columns"),
				Scale:    viper.GetInt("render.scale"),
				Labels:   viper.GetBool("render.labels"),
			},
		},
	})

	failed := 0
	for _, res := range pool.Run(cmd.Context(), tasks) {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Task.Name, res.Err)
			continue
		}
		fmt.Printf("%s (%s)\n", res.Path, res.Elapsed.Round(time.Millisecond))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d palettes failed", failed, len(tasks))
	}
	return nil
}
