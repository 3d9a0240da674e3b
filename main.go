package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "whitted"
	app.Usage = "render scenes with a recursive Whitted-style ray tracer"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to an image file",
			Description: `
Render a scene with reflections, refraction and hard shadows from point lights.

Settings come from the defaults, then the --config file (TOML or YAML), then
any flags given on the command line. Without --out the image is written to
output/<scene>/render_<timestamp>.png.

With --watch the config file is monitored and the scene is re-rendered every
time it changes, until interrupted.`,
			Flags:  renderFlags(),
			Action: renderCommand,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
	}
	return app
}
