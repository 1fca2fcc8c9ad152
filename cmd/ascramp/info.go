package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/geal-ai/ascramp"
	"github.com/spf13/cobra"
)

// jsonInfo is one grid in info --json output.
type jsonInfo struct {
	File      string   `json:"file"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	XLLCorner float64  `json:"xllcorner"`
	YLLCorner float64  `json:"yllcorner"`
	CellSize  float64  `json:"cellsize"`
	NoData    float64  `json:"nodata_value"`
	Valid     int      `json:"valid"`
	NoDataN   int      `json:"nodata_cells"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Mean      *float64 `json:"mean,omitempty"`
	StdDev    *float64 `json:"stddev,omitempty"`
	Error     string   `json:"error,omitempty"`
	ErrorKind string   `json:"error_kind,omitempty"`
}

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <grid>...",
	Short: "Print header and value statistics of grids",
	Long: `info loads each grid (relative names are looked up in the data
directory) and prints its header and statistics over the valid cells.
NoData cells are excluded from min, max, mean and standard deviation.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		results := loadAll(cmd.Context(), args)
		failed := 0
		for _, r := range results {
			if r.err != nil {
				failed++
			}
		}
		if infoJSON {
			out := make([]jsonInfo, len(results))
			for i, r := range results {
				out[i] = infoRecord(r)
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("json encode: %w", err)
			}
		} else {
			for _, r := range results {
				printInfo(w, r)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d grids failed to load", failed, len(results))
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(infoCmd)
}

func finite(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func infoRecord(r loaded) jsonInfo {
	if r.err != nil {
		rec := jsonInfo{File: r.path, Error: r.err.Error()}
		if k := ascramp.ErrorKind(r.err); k != 0 {
			rec.ErrorKind = k.String()
		}
		return rec
	}
	g := r.grid.Grid()
	s := r.grid.Stats()
	return jsonInfo{
		File:      r.path,
		Rows:      g.Rows,
		Cols:      g.Cols,
		XLLCorner: g.XLLCorner,
		YLLCorner: g.YLLCorner,
		CellSize:  g.CellSize,
		NoData:    g.NoDataValue,
		Valid:     s.Count,
		NoDataN:   s.NoData,
		Min:       finite(s.Min),
		Max:       finite(s.Max),
		Mean:      finite(s.Mean),
		StdDev:    finite(s.StdDev),
	}
}

func printInfo(w io.Writer, r loaded) {
	fmt.Fprintf(w, "\n  File     : %s\n", filepath.Base(r.path))
	if r.err != nil {
		fmt.Fprintf(w, "  error    : %v\n", r.err)
		return
	}
	g := r.grid.Grid()
	s := r.grid.Stats()
	nd := fmt.Sprintf("%g", g.NoDataValue)
	if !g.HasNoData {
		nd += " (default)"
	}
	fmt.Fprintf(w, "  Shape    : %d rows x %d cols\n", g.Rows, g.Cols)
	fmt.Fprintf(w, "  Origin   : %g, %g (lower-left corner)\n", g.XLLCorner, g.YLLCorner)
	fmt.Fprintf(w, "  Cellsize : %g\n", g.CellSize)
	fmt.Fprintf(w, "  NoData   : %s, %d cells\n", nd, s.NoData)
	if s.Count == 0 {
		fmt.Fprintf(w, "  Values   : none valid\n")
		return
	}
	fmt.Fprintf(w, "  Values   : %d valid, min %g, max %g\n", s.Count, s.Min, s.Max)
	fmt.Fprintf(w, "  Mean     : %g (stddev %g)\n", s.Mean, s.StdDev)
}
