package renderer

// Unit cube centered on the origin, four vertices per face so each face
// gets its own UVs. Faces are laid out in the order +X, -X, +Y, -Y, +Z,
// -Z to match cube.Face identities, wound counter-clockwise as seen from
// outside. V runs top-to-bottom because uploaded images store their top
// row first.
var cubeVertices = []float32{
	// +X
	0.5, -0.5, 0.5, 0, 1,
	0.5, -0.5, -0.5, 1, 1,
	0.5, 0.5, -0.5, 1, 0,
	0.5, 0.5, 0.5, 0, 0,
	// -X
	-0.5, -0.5, -0.5, 0, 1,
	-0.5, -0.5, 0.5, 1, 1,
	-0.5, 0.5, 0.5, 1, 0,
	-0.5, 0.5, -0.5, 0, 0,
	// +Y
	-0.5, 0.5, 0.5, 0, 1,
	0.5, 0.5, 0.5, 1, 1,
	0.5, 0.5, -0.5, 1, 0,
	-0.5, 0.5, -0.5, 0, 0,
	// -Y
	-0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, -0.5, 1, 1,
	0.5, -0.5, 0.5, 1, 0,
	-0.5, -0.5, 0.5, 0, 0,
	// +Z
	-0.5, -0.5, 0.5, 0, 1,
	0.5, -0.5, 0.5, 1, 1,
	0.5, 0.5, 0.5, 1, 0,
	-0.5, 0.5, 0.5, 0, 0,
	// -Z
	0.5, -0.5, -0.5, 0, 1,
	-0.5, -0.5, -0.5, 1, 1,
	-0.5, 0.5, -0.5, 1, 0,
	0.5, 0.5, -0.5, 0, 0,
}

var cubeIndices = []uint32{
	0, 1, 2, 0, 2, 3, // +X
	4, 5, 6, 4, 6, 7, // -X
	8, 9, 10, 8, 10, 11, // +Y
	12, 13, 14, 12, 14, 15, // -Y
	16, 17, 18, 16, 18, 19, // +Z
	20, 21, 22, 20, 22, 23, // -Z
}
