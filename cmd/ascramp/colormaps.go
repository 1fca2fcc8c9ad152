package main

import (
	"fmt"

	"github.com/geal-ai/ascramp"
	"github.com/spf13/cobra"
)

var colormapsCmd = &cobra.Command{
	Use:   "colormaps",
	Short: "List the built-in colormaps",
	Long: `colormaps lists the built-in colormaps in the viewer's menu order with
their display label, the name accepted by --colormap and a five color
preview. The configured colormap is marked with *.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		current, _ := ascramp.Lookup(cfg.Colormap)
		for _, label := range ascramp.ViewerColormaps {
			r, ok := ascramp.Lookup(label)
			if !ok {
				return fmt.Errorf("colormap %q is not built in", label)
			}
			t, err := ascramp.Bake(r, 5)
			if err != nil {
				return err
			}
			mark := " "
			if r.Name == current.Name {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %-12s %-11s", mark, label, r.Name)
			for _, c := range t {
				fmt.Fprintf(w, "  %s", c.Hex())
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(colormapsCmd)
}
