package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ErrUnknownScene is returned by Create for names with no built-in scene
var ErrUnknownScene = errors.New("scene: unknown scene")

// Options tunes the built-in scenes
type Options struct {
	ImagePath string      // Image shown on textured backdrops; empty leaves them magenta
	Logger    core.Logger // Receives non-fatal setup warnings; may be nil
}

func (o Options) logf(format string, args ...interface{}) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

var builtins = map[string]func(Options) *Scene{
	"sphere":  NewSphereScene,
	"shapes":  NewShapesScene,
	"spheres": NewSpheresScene,
}

// Names lists the built-in scenes in alphabetical order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named built-in scene
func Create(name string, opts Options) (*Scene, error) {
	build, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownScene, name, Names())
	}
	return build(opts), nil
}
