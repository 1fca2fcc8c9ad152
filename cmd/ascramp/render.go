package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/geal-ai/ascramp"
	"github.com/geal-ai/ascramp/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderFormat string
	renderOut    string
	renderTitle  string
	renderRamp   rampFlags
	renderRange  rangeFlags
)

var renderCmd = &cobra.Command{
	Use:   "render <grid>",
	Short: "Render a grid as a PNG or HTML heat map",
	Long: `render draws a grid through a colormap. NoData cells are left blank.
Values are clamped to --min/--max, or to the grid's valid range when those
are not given. The output goes to the output directory as
<grid>_<colormap>.<format> unless --out names a file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if renderFormat != "png" && renderFormat != "html" {
			return fmt.Errorf("unknown format %q (want png or html)", renderFormat)
		}
		r, err := renderRamp.ramp()
		if err != nil {
			return err
		}
		m, err := loadOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		norm, err := renderRange.normalizer(cmd, m)
		if err != nil {
			return err
		}

		out := renderOut
		if out == "" {
			out = filepath.Join(cfg.OutDir, outputName(args[0], r.Name, renderFormat))
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		opts := render.Options{Title: renderTitle, Norm: &norm, Samples: cfg.Samples}
		if renderFormat == "html" {
			err = render.HTML(f, m, r, opts)
		} else {
			err = render.PNG(f, m, r, opts)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
			return err
		}
		log.Printf("wrote %s (range %g..%g, colormap %s)", out, norm.Min, norm.Max, r.Name)
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderFormat, "format", "f", "png", "output format: png or html")
	f.StringVar(&renderOut, "out", "", "output file (default: <out-dir>/<grid>_<colormap>.<format>)")
	f.StringVar(&renderTitle, "title", "", "plot title")
	renderRamp.register(renderCmd)
	renderRange.register(renderCmd)
	rootCmd.AddCommand(renderCmd)
}

// outputName builds "<grid>_<colormap>.<ext>" from a grid path, dropping
// the .asc and .gz extensions.
func outputName(grid, ramp, ext string) string {
	base := filepath.Base(grid)
	for _, suffix := range []string{".gz", ".asc"} {
		if strings.HasSuffix(strings.ToLower(base), suffix) {
			base = base[:len(base)-len(suffix)]
		}
	}
	return fmt.Sprintf("%s_%s.%s", base, strings.ToLower(ascramp.GLSLIdent(ramp)), ext)
}
