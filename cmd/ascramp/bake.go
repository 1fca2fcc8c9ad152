package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/geal-ai/ascramp"
	"github.com/spf13/cobra"
)

var (
	bakeFormat   string
	bakeOut      string
	bakeAll      bool
	bakeParallel int
	bakeRamp     rampFlags
)

var bakeCmd = &cobra.Command{
	Use:   "bake [colormap...]",
	Short: "Sample colormaps into fixed-size color tables",
	Long: `bake samples each named colormap (default: the configured one) at
--samples evenly spaced positions from 0 to 1 and writes the tables as GLSL
vec3 arrays, JSON triples or hex colors. --stops bakes a custom ramp instead.`,
	Example: `  ascramp bake gist_earth terrain > colormaps.glsl
  ascramp bake --all --format json
  ascramp bake --stops "#0000ff,#ffffff,#ff0000" --name blue_to_red`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ramps, err := bakeRamps(args)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if bakeOut != "" {
			f, err := os.Create(bakeOut)
			if err != nil {
				return fmt.Errorf("bake: %w", err)
			}
			defer f.Close()
			w = f
		}
		bw := bufio.NewWriter(w)

		for i, r := range ramps {
			t, err := ascramp.BakeParallel(r, cfg.Samples, bakeParallel)
			if err != nil {
				return err
			}
			if i > 0 && bakeFormat == "glsl" {
				fmt.Fprintln(bw)
			}
			if err := writeTable(bw, r.Name, t); err != nil {
				return fmt.Errorf("bake %s: %w", r.Name, err)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("bake: %w", err)
		}
		if bakeOut != "" {
			log.Printf("wrote %d table(s) of %d colors to %s", len(ramps), cfg.Samples, bakeOut)
		}
		return nil
	},
}

func init() {
	f := bakeCmd.Flags()
	f.StringVarP(&bakeFormat, "format", "f", "glsl", "output format: glsl, json or hex")
	f.StringVar(&bakeOut, "out", "", "write to file instead of stdout")
	f.BoolVar(&bakeAll, "all", false, "bake every built-in colormap")
	f.IntVar(&bakeParallel, "parallel", 1, "goroutines per table")
	bakeRamp.register(bakeCmd)
	rootCmd.AddCommand(bakeCmd)
}

func bakeRamps(args []string) ([]ascramp.Ramp, error) {
	switch bakeFormat {
	case "glsl", "json", "hex":
	default:
		return nil, fmt.Errorf("unknown format %q (want glsl, json or hex)", bakeFormat)
	}
	if len(bakeRamp.stops) > 0 {
		if bakeAll || len(args) > 0 {
			return nil, fmt.Errorf("--stops cannot be combined with colormap names or --all")
		}
		r, err := bakeRamp.ramp()
		if err != nil {
			return nil, err
		}
		return []ascramp.Ramp{r}, nil
	}
	names := args
	switch {
	case bakeAll:
		names = ascramp.Names()
	case len(names) == 0:
		names = []string{cfg.Colormap}
	}
	ramps := make([]ascramp.Ramp, 0, len(names))
	for _, n := range names {
		r, err := lookupRamp(n)
		if err != nil {
			return nil, err
		}
		ramps = append(ramps, r)
	}
	return ramps, nil
}

func writeTable(w io.Writer, name string, t ascramp.ColorTable) error {
	switch bakeFormat {
	case "json":
		return ascramp.WriteJSON(w, t)
	case "hex":
		for _, c := range t {
			if _, err := fmt.Fprintln(w, c.Hex()); err != nil {
				return err
			}
		}
		return nil
	}
	return ascramp.WriteGLSL(w, name, t)
}
