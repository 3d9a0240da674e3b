//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Render mg.Namespace

// Renders every built-in scene at preview size into output/.
func (Render) All() error {
	mg.Deps(Build.Binary)
	for _, name := range []string{"sphere", "shapes", "spheres"} {
		if err := renderScene(name, "480", "270"); err != nil {
			return err
		}
	}
	return nil
}

// Renders the spheres scene at full size.
func (Render) Spheres() error {
	mg.Deps(Build.Binary)
	return renderScene("spheres", "1280", "720")
}

func renderScene(name, width, height string) error {
	fmt.Printf("Rendering %s...\n", name)
	_, err := executeCmd("bin/whitted", withArgs(
		"render",
		"--scene", name,
		"--width", width,
		"--height", height,
		"--out", fmt.Sprintf("output/%s.png", name),
	), withStream())
	return err
}
