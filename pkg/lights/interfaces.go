package lights

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Visible reports whether the segment from point to lightPos is free of
// shapes other than exclude. Hits beyond the light do not block it.
func Visible(point, lightPos core.Vec3, shapes []core.Shape, exclude core.Shape) bool {
	lightDist := lightPos.Subtract(point).Length()
	ray := core.NewRay(point, lightPos)

	for _, shape := range shapes {
		if shape == exclude {
			continue
		}
		if hit, ok := shape.TestIntersection(ray); ok && hit.Distance < lightDist {
			return false
		}
	}
	return true
}
