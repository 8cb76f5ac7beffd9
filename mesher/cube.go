package mesher

// face order: front(+z) back(-z) left(-x) right(+x) top(+y) bottom(-y)
const (
	faceFront = iota
	faceBack
	faceLeft
	faceRight
	faceTop
	faceBottom
	faceCount
)

var faceNormals = [faceCount][3]int{
	faceFront:  {0, 0, 1},
	faceBack:   {0, 0, -1},
	faceLeft:   {-1, 0, 0},
	faceRight:  {1, 0, 0},
	faceTop:    {0, 1, 0},
	faceBottom: {0, -1, 0},
}

var faceShade = [faceCount]float32{
	faceFront:  0.8,
	faceBack:   0.8,
	faceLeft:   0.6,
	faceRight:  0.6,
	faceTop:    1.0,
	faceBottom: 0.5,
}

// Unit cube spanning [0,1] on each axis, two counter-clockwise triangles per face.
var cubeVertices = [faceCount][18]float32{
	faceFront: {
		0, 0, 1, // Bottom-left
		1, 0, 1, // Bottom-right
		1, 1, 1, // Top-right
		0, 0, 1, // Bottom-left
		1, 1, 1, // Top-right
		0, 1, 1, // Top-left
	},
	faceBack: {
		0, 0, 0, // Bottom-left
		0, 1, 0, // Top-left
		1, 1, 0, // Top-right
		0, 0, 0, // Bottom-left
		1, 1, 0, // Top-right
		1, 0, 0, // Bottom-right
	},
	faceLeft: {
		0, 0, 0,
		0, 0, 1,
		0, 1, 1,
		0, 0, 0,
		0, 1, 1,
		0, 1, 0,
	},
	faceRight: {
		1, 0, 0,
		1, 1, 0,
		1, 1, 1,
		1, 0, 0,
		1, 1, 1,
		1, 0, 1,
	},
	faceTop: {
		0, 1, 0,
		0, 1, 1,
		1, 1, 1,
		0, 1, 0,
		1, 1, 1,
		1, 1, 0,
	},
	faceBottom: {
		0, 0, 0,
		1, 0, 0,
		1, 0, 1,
		0, 0, 0,
		1, 0, 1,
		0, 0, 1,
	},
}

// Indices into a tile rect {u0, v0, u1, v1}; v0 is the top edge of the tile.
var cubeUVs = [faceCount][12]uint8{
	faceFront:  {0, 3, 2, 3, 2, 1, 0, 3, 2, 1, 0, 1},
	faceBack:   {2, 3, 2, 1, 0, 1, 2, 3, 0, 1, 0, 3},
	faceLeft:   {0, 3, 2, 3, 2, 1, 0, 3, 2, 1, 0, 1},
	faceRight:  {2, 3, 2, 1, 0, 1, 2, 3, 0, 1, 0, 3},
	faceTop:    {0, 3, 0, 1, 2, 1, 0, 3, 2, 1, 2, 3},
	faceBottom: {0, 3, 2, 3, 2, 1, 0, 3, 2, 1, 0, 1},
}

// VerticesPerFace is the number of vertices emitted for a visible face.
const VerticesPerFace = 6
