// Package cube implements the orientation and face-cycling core of the
// image cube widget: drag-driven quaternion rotation with momentum,
// camera-facing visibility, image advancement on visibility rising edges,
// and the scripted showcase sequencer.
package cube

import "github.com/Faultbox/cubeview/pkg/math"

// Face identifies one of the six cube sides.
type Face int

// Face identities, one per outward local-space normal.
const (
	FacePosX Face = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ

	FaceCount = 6
)

// Valid reports whether f is one of the six face identities.
func (f Face) Valid() bool {
	return f >= 0 && f < FaceCount
}

// Normals holds the immutable outward unit normal of each face in the
// cube's local frame.
var Normals = [FaceCount]math.Vec3{
	FacePosX: {X: 1},
	FaceNegX: {X: -1},
	FacePosY: {Y: 1},
	FaceNegY: {Y: -1},
	FacePosZ: {Z: 1},
	FaceNegZ: {Z: -1},
}

// FaceSet is a bitmask of face identities.
type FaceSet uint8

// Contains reports whether f is in the set.
func (s FaceSet) Contains(f Face) bool {
	return s&(1<<uint(f)) != 0
}

// With returns the set with f added.
func (s FaceSet) With(f Face) FaceSet {
	return s | 1<<uint(f)
}

// Count returns the number of faces in the set.
func (s FaceSet) Count() int {
	n := 0
	for f := Face(0); f < FaceCount; f++ {
		if s.Contains(f) {
			n++
		}
	}
	return n
}
