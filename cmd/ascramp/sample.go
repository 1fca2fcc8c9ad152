package main

import (
	"encoding/json"
	"fmt"

	"github.com/geal-ai/ascramp"
	"github.com/spf13/cobra"
)

// jsonSample is the sample --json output.
type jsonSample struct {
	File     string   `json:"file"`
	Row      int      `json:"row"`
	Col      int      `json:"col"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Value    *float64 `json:"value"`
	Position *float64 `json:"position,omitempty"`
	Color    string   `json:"color,omitempty"`
	Colormap string   `json:"colormap"`
}

var (
	sampleX, sampleY     float64
	sampleRow, sampleCol int
	sampleJSON           bool
	sampleRamp           rampFlags
	sampleRange          rangeFlags
)

var sampleCmd = &cobra.Command{
	Use:   "sample <grid>",
	Short: "Print the value and ramp color of one grid cell",
	Long: `sample looks up the cell containing map coordinate (--x, --y), or the
cell at (--row, --col) with row 0 at the top, and prints its value, its
normalized ramp position and the color a baked table assigns to it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		byXY := flags.Changed("x") || flags.Changed("y")
		byRC := flags.Changed("row") || flags.Changed("col")
		if byXY == byRC {
			return fmt.Errorf("give either --x and --y or --row and --col")
		}

		r, err := sampleRamp.ramp()
		if err != nil {
			return err
		}
		m, err := loadOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		g := m.Grid()

		row, col := sampleRow, sampleCol
		if byXY {
			var ok bool
			row, col, ok = g.CellAt(sampleX, sampleY)
			if !ok {
				return fmt.Errorf("(%g, %g) is outside the grid extent", sampleX, sampleY)
			}
		} else if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
			return fmt.Errorf("cell (%d, %d) is outside the %dx%d grid", row, col, g.Rows, g.Cols)
		}
		x, y := g.CellCenter(row, col)

		out := jsonSample{File: args[0], Row: row, Col: col, X: x, Y: y, Colormap: r.Name}
		cell := m.At(row, col)
		if cell.Valid {
			out.Value = &cell.Value
			norm, err := sampleRange.normalizer(cmd, m)
			if err != nil {
				return err
			}
			t, _ := norm.Cell(cell)
			table, err := ascramp.Bake(r, cfg.Samples)
			if err != nil {
				return err
			}
			out.Position = &t
			out.Color = table.Lookup(t).Hex()
		}

		w := cmd.OutOrStdout()
		if sampleJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		fmt.Fprintf(w, "\n")
		fmt.Fprintf(w, "  Cell     : row %d, col %d (center %g, %g)\n", row, col, x, y)
		if out.Value == nil {
			fmt.Fprintf(w, "  Value    : NoData\n\n")
			return nil
		}
		fmt.Fprintf(w, "  Value    : %g\n", *out.Value)
		fmt.Fprintf(w, "  Position : %.6f\n", *out.Position)
		fmt.Fprintf(w, "  Color    : %s (%s)\n", out.Color, r.Name)
		fmt.Fprintf(w, "\n")
		return nil
	},
}

func init() {
	f := sampleCmd.Flags()
	f.Float64Var(&sampleX, "x", 0, "easting in map units")
	f.Float64Var(&sampleY, "y", 0, "northing in map units")
	f.IntVar(&sampleRow, "row", 0, "row index, 0 at the top")
	f.IntVar(&sampleCol, "col", 0, "column index")
	f.BoolVar(&sampleJSON, "json", false, "output as JSON")
	sampleRamp.register(sampleCmd)
	sampleRange.register(sampleCmd)
	rootCmd.AddCommand(sampleCmd)
}
