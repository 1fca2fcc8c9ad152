// Command ascramp inspects ESRI ASCII grids and bakes, samples and renders
// color ramps over them.
//
// Usage:
//
//	ascramp list
//	ascramp info <grid>...
//	ascramp sample <grid> --x <easting> --y <northing>
//	ascramp render <grid> [--colormap name] [--min v --max v] [--format png|html]
//	ascramp bake [colormap...] [--format glsl|json|hex] [--samples n]
//	ascramp colormaps
//
// Settings come from .env, ASCRAMP_* environment variables and flags, in
// increasing order of precedence.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ascramp: ")
	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
