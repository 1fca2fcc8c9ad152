package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/geal-ai/ascramp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// resolveGrid returns name as given when it is a URL or an existing path,
// otherwise name inside the data directory.
func resolveGrid(name string) string {
	if filepath.IsAbs(name) || ascramp.IsURL(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(cfg.DataDir, name)
}

// loaded is the outcome of loading one grid.
type loaded struct {
	path string
	grid *ascramp.MaskedGrid
	err  error
}

// loadAll loads paths with at most cfg.Workers concurrent decodes. Per-file
// failures are reported in the result, not returned, so one bad grid does
// not cancel the rest; results keep the order of paths.
func loadAll(ctx context.Context, paths []string) []loaded {
	out := make([]loaded, len(paths))
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			out[i].path = p
			if err := ctx.Err(); err != nil {
				out[i].err = err
				return nil
			}
			out[i].grid, out[i].err = loadOne(ctx, p)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

var client = ascramp.NewClient()

// loadOne loads a single grid from disk or, for http(s) names, over the
// network.
func loadOne(ctx context.Context, name string) (*ascramp.MaskedGrid, error) {
	var (
		g   *ascramp.Grid
		err error
	)
	if src := resolveGrid(name); ascramp.IsURL(src) {
		g, err = client.Fetch(ctx, src)
	} else {
		g, err = ascramp.Load(src)
	}
	if err != nil {
		return nil, err
	}
	return ascramp.Mask(g), nil
}

// rampFlags selects a ramp: explicit stops win over --colormap.
type rampFlags struct {
	stops []string
	name  string
}

func (f *rampFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.stops, "stops", nil, `custom ramp as "#rrggbb[:pos]" stops, e.g. "#0000ff,#ffffff,#ff0000"`)
	cmd.Flags().StringVar(&f.name, "name", "custom", "name of the custom ramp")
}

func (f *rampFlags) ramp() (ascramp.Ramp, error) {
	if len(f.stops) > 0 {
		stops, err := ascramp.ParseStops(f.stops)
		if err != nil {
			return ascramp.Ramp{}, err
		}
		r := ascramp.FromStops(f.name, stops)
		return r, r.Validate()
	}
	return lookupRamp(cfg.Colormap)
}

func lookupRamp(name string) (ascramp.Ramp, error) {
	r, ok := ascramp.Lookup(name)
	if !ok {
		return ascramp.Ramp{}, fmt.Errorf("unknown colormap %q (see 'ascramp colormaps')", name)
	}
	return r, nil
}

// rangeFlags is an optional manual clamp range.
type rangeFlags struct {
	min, max float64
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.min, "min", 0, "lower clamp value (default: grid minimum)")
	cmd.Flags().Float64Var(&f.max, "max", 0, "upper clamp value (default: grid maximum)")
}

// normalizer returns the manual range where given and the grid's valid range
// for the rest.
func (f *rangeFlags) normalizer(cmd *cobra.Command, m *ascramp.MaskedGrid) (ascramp.Normalizer, error) {
	setMin, setMax := cmd.Flags().Changed("min"), cmd.Flags().Changed("max")
	if setMin && setMax {
		return ascramp.ManualRange(f.min, f.max), nil
	}
	auto, ok := ascramp.AutoRange(m)
	if !ok {
		return ascramp.Normalizer{}, fmt.Errorf("%s: every cell is NoData; pass --min and --max", m.Grid().Path)
	}
	if setMin {
		auto.Min = f.min
	}
	if setMax {
		auto.Max = f.max
	}
	return ascramp.ManualRange(auto.Min, auto.Max), nil
}
