package mesh

// CubeVertices holds the 8 corners of a unit cube centered at the
// origin, tightly packed x, y, z.
var CubeVertices = []float32{
	// Front face
	-0.5, -0.5, 0.5,
	0.5, -0.5, 0.5,
	0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5,
	0.5, -0.5, -0.5,
	0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5,
}

// CubeIndices lists 12 triangles, two per face.
var CubeIndices = []uint32{
	// Front face
	0, 1, 2,
	2, 3, 0,

	// Right face
	1, 5, 6,
	6, 2, 1,

	// Back face
	5, 4, 7,
	7, 6, 5,

	// Left face
	4, 0, 3,
	3, 7, 4,

	// Top face
	3, 2, 6,
	6, 7, 3,

	// Bottom face
	4, 5, 1,
	1, 0, 4,
}
