package main

import (
	"fmt"
	"path/filepath"

	"github.com/geal-ai/ascramp"
	"github.com/spf13/cobra"
)

var listLong bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the grids in the data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		names, err := ascramp.ScanDir(cfg.DataDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintf(w, "no grids in %s\n", cfg.DataDir)
			return nil
		}
		if !listLong {
			for _, n := range names {
				fmt.Fprintln(w, n)
			}
			return nil
		}

		paths := make([]string, len(names))
		width := 0
		for i, n := range names {
			paths[i] = filepath.Join(cfg.DataDir, n)
			width = max(width, len(n))
		}
		failed := 0
		for i, r := range loadAll(cmd.Context(), paths) {
			if r.err != nil {
				failed++
				fmt.Fprintf(w, "%-*s  error: %v\n", width, names[i], r.err)
				continue
			}
			rows, cols := r.grid.Dims()
			fmt.Fprintf(w, "%-*s  %6d x %-6d  %d nodata\n", width, names[i], rows, cols, r.grid.NoDataCount())
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d grids failed to load", failed, len(names))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listLong, "long", "l", false, "load each grid and show its shape")
	rootCmd.AddCommand(listCmd)
}
