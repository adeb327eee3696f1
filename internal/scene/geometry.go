package scene

import "github.com/fbarrios/desertscene/pkg/math"

// Geometry fixtures. Every mesh in the scene is a literal constant; the
// cactus variants share one box template scaled by a constant factor.

// pyramidVertices is a square-based pyramid: 5 vertices, 6 triangles
// (four sides plus a two-triangle base).
var pyramidVertices = []math.Vec3{
	{X: 0.5, Y: 1.0, Z: -0.5},
	{X: 0.0, Y: 0.0, Z: 0.0},
	{X: 1.0, Y: 0.0, Z: 0.0},
	{X: 1.0, Y: 0.0, Z: -1.0},
	{X: 0.0, Y: 0.0, Z: -1.0},
}

var pyramidIndices = []uint32{
	0, 1, 2,
	0, 2, 3,
	3, 4, 2,
	0, 3, 4,
	1, 2, 4,
	0, 1, 4,
}

// groundVertices is a large flat quad underneath the scene.
var groundVertices = []math.Vec3{
	{X: -5.0, Y: 0.0, Z: 10.0},
	{X: 5.0, Y: 0.0, Z: 10.0},
	{X: -5.0, Y: 0.0, Z: 0.0},
	{X: 5.0, Y: 0.0, Z: 0.0},
}

var groundIndices = []uint32{
	3, 1, 0,
	2, 0, 3,
}

// skyVertices is an upright quad behind the scene.
var skyVertices = []math.Vec3{
	{X: 0.0, Y: 10.0, Z: 0.0},
	{X: 10.0, Y: 0.0, Z: 0.0},
	{X: 10.0, Y: 10.0, Z: 0.0},
	{X: 0.0, Y: 0.0, Z: 0.0},
}

var skyIndices = []uint32{
	0, 2, 1,
	0, 3, 1,
}

// cactusVertices is a tall thin box template: 10 vertices, 8 triangles.
// The last two vertices duplicate the first two to close the back face.
var cactusVertices = []math.Vec3{
	{X: 0.00, Y: 1.0, Z: 0.00},
	{X: 0.00, Y: 0.0, Z: 0.00},
	{X: 0.10, Y: 1.0, Z: 0.00},
	{X: 0.10, Y: 0.0, Z: 0.00},
	{X: 0.10, Y: 1.0, Z: -0.10},
	{X: 0.10, Y: 0.0, Z: -0.10},
	{X: 0.00, Y: 1.0, Z: -0.10},
	{X: 0.00, Y: 0.0, Z: -0.10},
	{X: 0.00, Y: 1.0, Z: 0.00},
	{X: 0.00, Y: 0.0, Z: 0.00},
}

var cactusIndices = []uint32{
	0, 1, 3,
	0, 3, 2,
	2, 3, 5,
	2, 5, 4,
	4, 5, 7,
	4, 7, 6,
	0, 1, 7,
	0, 7, 6,
}

// scaleVertices returns a copy of vs with every component divided by d.
func scaleVertices(vs []math.Vec3, d float32) []math.Vec3 {
	out := make([]math.Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.Scale(1 / d)
	}
	return out
}
