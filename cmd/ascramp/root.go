package main

import (
	"github.com/geal-ai/ascramp/internal/config"
	"github.com/spf13/cobra"
)

// cfg is resolved before any subcommand runs.
var cfg config.Config

var envFiles []string

var rootCmd = &cobra.Command{
	Use:           "ascramp",
	Short:         "Inspect ASCII grids and map them through color ramps",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(envFiles...)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("data-dir") {
			c.DataDir, _ = flags.GetString("data-dir")
		}
		if flags.Changed("colormap") {
			c.Colormap, _ = flags.GetString("colormap")
		}
		if flags.Changed("samples") {
			c.Samples, _ = flags.GetInt("samples")
		}
		if flags.Changed("out-dir") {
			c.OutDir, _ = flags.GetString("out-dir")
		}
		if flags.Changed("workers") {
			c.Workers, _ = flags.GetInt("workers")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	def := config.Default()
	pf := rootCmd.PersistentFlags()
	pf.StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load instead of ./.env")
	pf.String("data-dir", def.DataDir, "directory holding .asc grids ("+config.EnvDataDir+")")
	pf.StringP("colormap", "c", def.Colormap, "built-in colormap name ("+config.EnvColormap+")")
	pf.IntP("samples", "n", def.Samples, "color table size ("+config.EnvSamples+")")
	pf.StringP("out-dir", "o", def.OutDir, "output directory for rendered files ("+config.EnvOutDir+")")
	pf.IntP("workers", "j", def.Workers, "grids loaded concurrently ("+config.EnvWorkers+")")
}
