// Command vlevel demonstrates the vertical-level remapping kernels on a
// synthetic hybrid sounding: coefficients and surface pressure from builder,
// the 3-D pressure coordinate from hybrid, temperature remapped to standard
// pressure levels by vinterp.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"bitbucket.org/ctessum/sparse"
	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/vlevel/builder"
	"github.com/katalvlaran/vlevel/field"
	"github.com/katalvlaran/vlevel/hybrid"
	"github.com/katalvlaran/vlevel/vinterp"
)

// referencePa anchors the hybrid reconstruction (Po).
const referencePa = 100000.0

var (
	// Global flags
	verbose bool

	// demo flags
	levels  []float64
	columns int
	nsigma  int
	workers int
	kindArg string
	seed    int64
	jitter  float64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vlevel",
	Short: "vlevel - remap scalar fields between vertical coordinate systems",
	Long: `vlevel remaps gridded scalar fields (temperature, humidity, ...) from a
model's native sigma or hybrid levels onto fixed pressure levels.

The library does the work: hybrid reconstructs the 3-D pressure coordinate
P = B*Ps + A*Po, and vinterp locates bracketing source levels per column and
interpolates linearly or log-linearly in pressure.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// demoCmd builds a synthetic sounding and remaps it to pressure levels
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Remap a synthetic hybrid-level sounding to pressure levels",
	Long: `Builds a deterministic synthetic sounding and remaps it:

  1. Hybrid A/B coefficient profiles for --nsigma levels
  2. Jittered per-column surface pressure (--columns, --seed, --jitter)
  3. Pressure coordinate P = B*Ps + A*Po across the grid
  4. Analytic temperature T(P) on the hybrid levels
  5. Interpolation to --levels (default: the 17 standard pressure levels)

The result is rendered as a table with one row per target level. Levels
outside a column's pressure range come back masked, not extrapolated.`,
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	demoCmd.Flags().Float64SliceVar(&levels, "levels", nil, "Target pressure levels in Pa (default: 17 standard levels)")
	demoCmd.Flags().IntVar(&columns, "columns", 4, "Number of surface columns")
	demoCmd.Flags().IntVar(&nsigma, "nsigma", 20, "Number of source hybrid levels")
	demoCmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines for the level loop (0 = GOMAXPROCS)")
	demoCmd.Flags().StringVar(&kindArg, "kind", "", "Interpolation kind: linear or log-linear (default: both)")
	demoCmd.Flags().Int64Var(&seed, "seed", 1, "Seed for the surface-pressure jitter")
	demoCmd.Flags().Float64Var(&jitter, "jitter", 0.05, "Surface-pressure jitter fraction in [0,1)")

	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runDemo wires builder -> hybrid -> vinterp and renders the result.
func runDemo(cmd *cobra.Command, args []string) error {
	targets := levels
	if len(targets) == 0 {
		targets = vinterp.DefaultLevels()
	}

	kinds := []vinterp.Kind{vinterp.Linear, vinterp.LogLinear}
	if kindArg != "" {
		k, err := vinterp.ParseKind(kindArg)
		if err != nil {
			return err
		}
		kinds = []vinterp.Kind{k}
	}

	logger.Info("building synthetic sounding",
		zap.Int("nsigma", nsigma),
		zap.Int("columns", columns),
		zap.Int64("seed", seed),
		zap.Float64("jitter", jitter))

	a, b, err := builder.BuildHybridCoefficients(nsigma)
	if err != nil {
		return err
	}
	ps, err := buildSurfacePressure(columns, seed, jitter)
	if err != nil {
		return err
	}
	p, err := hybrid.ReconstructPressure(ps, a, b, referencePa)
	if err != nil {
		return err
	}
	ta, err := builder.BuildTemperature(p)
	if err != nil {
		return err
	}
	logger.Debug("sounding ready",
		zap.Float64("top_pa", p.Data.Get(0, 0)),
		zap.Float64("surface_pa", p.Data.Get(nsigma-1, 0)))

	results := make(map[vinterp.Kind]*field.Field, len(kinds))
	for _, k := range kinds {
		opts := []vinterp.Option{
			vinterp.WithKind(k),
			vinterp.WithLevels(targets...),
			vinterp.WithAxisName(hybrid.DefaultLevelAxisName),
			vinterp.WithProgress(func(level, total int) {
				logger.Debug("level done", zap.Int("level", level+1), zap.Int("total", total))
			}),
		}
		if workers > 0 {
			opts = append(opts, vinterp.WithWorkers(workers))
		}

		start := time.Now()
		out, err := vinterp.Interpolate(ta, p, opts...)
		if err != nil {
			return err
		}
		logger.Info("interpolated",
			zap.String("kind", k.String()),
			zap.Int("levels", len(targets)),
			zap.Duration("took", time.Since(start)))
		results[k] = out
	}

	renderTable(cmd.OutOrStdout(), targets, kinds, results)
	return nil
}

// buildSurfacePressure derives a 1-D jittered surface-pressure field from the
// bottom row of a two-level pressure grid.
func buildSurfacePressure(cols int, seed int64, frac float64) (*field.Field, error) {
	base, err := builder.BuildPressureColumns(2, cols, seed, builder.WithJitter(frac))
	if err != nil {
		return nil, err
	}

	data := sparse.ZerosDense(cols)
	copy(data.Elements, base.Data.Elements[cols:2*cols])
	ps, err := field.New("ps", data, []field.Axis{base.Axes[1].Clone()},
		field.WithAttrs(base.Attrs.Clone()))
	if err != nil {
		return nil, err
	}
	return ps, nil
}

// renderTable prints one row per target level: the first column's value for
// each interpolation kind, plus how many columns held a valid result.
func renderTable(w io.Writer, targets []float64, kinds []vinterp.Kind, results map[vinterp.Kind]*field.Field) {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)

	header := prettytable.Row{"level (Pa)"}
	for _, k := range kinds {
		header = append(header, fmt.Sprintf("%s (K)", k))
	}
	header = append(header, "valid cols")
	tw.AppendHeader(header)

	cols := results[kinds[0]].Shape()[1]
	for i, lev := range targets {
		row := prettytable.Row{fmt.Sprintf("%.0f", lev)}
		for _, k := range kinds {
			row = append(row, cell(results[k], i))
		}
		row = append(row, fmt.Sprintf("%d/%d", validInRow(results[kinds[0]], i), cols))
		tw.AppendRow(row)
	}
	tw.Render()
}

// cell formats the first column's value for one target level.
func cell(out *field.Field, levIdx int) string {
	cols := out.Shape()[1]
	if out.IsMissing(levIdx * cols) {
		return "missing"
	}
	return fmt.Sprintf("%.2f", out.Data.Elements[levIdx*cols])
}

// validInRow counts columns with a valid result at one target level.
func validInRow(out *field.Field, levIdx int) int {
	cols := out.Shape()[1]
	valid := 0
	for c := 0; c < cols; c++ {
		if !out.IsMissing(levIdx*cols + c) {
			valid++
		}
	}
	return valid
}
