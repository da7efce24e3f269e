package mesh

import "math"

// Vertex layout used by every primitive: position (3), normal (3), uv (2).
const (
	floatsPerVertex = 8
	vertexStride    = floatsPerVertex * 4 // bytes
)

// PlaneGeometry returns a unit plane on the XZ axes spanning -1..1,
// facing +Y, with UVs covering 0..1.
func PlaneGeometry() ([]float32, []uint32) {
	vertices := []float32{
		// x, y, z, nx, ny, nz, u, v
		-1, 0, -1, 0, 1, 0, 0, 1,
		1, 0, -1, 0, 1, 0, 1, 1,
		1, 0, 1, 0, 1, 0, 1, 0,
		-1, 0, 1, 0, 1, 0, 0, 0,
	}
	indices := []uint32{0, 2, 1, 0, 3, 2}
	return vertices, indices
}

// BoxGeometry returns a unit cube centered at the origin with per-face
// normals and UVs, 24 vertices and 36 indices.
func BoxGeometry() ([]float32, []uint32) {
	h := float32(0.5)

	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}

	faces := []face{
		// +Z front
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		// -Z back
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		// +X right
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		// -X left
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		// +Y top
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		// -Y bottom
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]float32, 0, len(faces)*4*floatsPerVertex)
	indices := make([]uint32, 0, len(faces)*6)

	for fi, f := range faces {
		for ci, c := range f.corners {
			vertices = append(vertices,
				c[0], c[1], c[2],
				f.normal[0], f.normal[1], f.normal[2],
				uvs[ci][0], uvs[ci][1],
			)
		}
		base := uint32(fi * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}

// CylinderGeometry returns a cylinder of radius 1 with its base on the XZ
// plane extending to y=1, built from the given number of radial segments.
// The side wall uses smooth normals; the caps are flat.
func CylinderGeometry(segments int) ([]float32, []uint32) {
	if segments < 3 {
		segments = 3
	}

	var vertices []float32
	var indices []uint32

	// Side wall: two rings of segments+1 vertices (seam duplicated for UVs)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))
		u := float32(i) / float32(segments)

		vertices = append(vertices,
			c, 0, s, c, 0, s, u, 0, // bottom ring
			c, 1, s, c, 0, s, u, 1, // top ring
		)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+1, base+3,
		)
	}

	// Caps: center vertex plus a ring each
	capStart := uint32(len(vertices) / floatsPerVertex)
	vertices = append(vertices, 0, 1, 0, 0, 1, 0, 0.5, 0.5) // top center
	vertices = append(vertices, 0, 0, 0, 0, -1, 0, 0.5, 0.5) // bottom center
	topCenter := capStart
	bottomCenter := capStart + 1

	ringStart := capStart + 2
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(angle))
		s := float32(math.Sin(angle))

		vertices = append(vertices,
			c, 1, s, 0, 1, 0, (c+1)/2, (s+1)/2, // top ring
			c, 0, s, 0, -1, 0, (c+1)/2, (s+1)/2, // bottom ring
		)
	}
	for i := 0; i < segments; i++ {
		top := ringStart + uint32(i*2)
		bottom := ringStart + uint32(i*2) + 1
		indices = append(indices,
			topCenter, top+2, top,
			bottomCenter, bottom, bottom+2,
		)
	}

	return vertices, indices
}

// TorusGeometry returns a torus with major radius 1 and the given tube
// (minor) radius, built from rings x sides quads with smooth normals.
func TorusGeometry(rings, sides int, tubeRadius float32) ([]float32, []uint32) {
	if rings < 3 {
		rings = 3
	}
	if sides < 3 {
		sides = 3
	}

	var vertices []float32
	var indices []uint32

	for i := 0; i <= rings; i++ {
		a := 2 * math.Pi * float64(i) / float64(rings)
		ca := float32(math.Cos(a))
		sa := float32(math.Sin(a))

		for j := 0; j <= sides; j++ {
			b := 2 * math.Pi * float64(j) / float64(sides)
			cb := float32(math.Cos(b))
			sb := float32(math.Sin(b))

			// Tube cross-section around the major circle
			px := (1 + tubeRadius*cb) * ca
			py := tubeRadius * sb
			pz := (1 + tubeRadius*cb) * sa

			nx := cb * ca
			ny := sb
			nz := cb * sa

			vertices = append(vertices,
				px, py, pz,
				nx, ny, nz,
				float32(i)/float32(rings), float32(j)/float32(sides),
			)
		}
	}

	stride := uint32(sides + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := uint32(i)*stride + uint32(j)
			b := a + stride
			indices = append(indices,
				a, b, a+1,
				a+1, b, b+1,
			)
		}
	}

	return vertices, indices
}
