package cube

import "github.com/Faultbox/cubeview/pkg/math"

// VisibleFaces returns the set of faces whose world-space normal points
// toward the camera. The cutoff is a strict dot > 0: a face exactly
// edge-on is not visible, so it only counts as newly visible on the tick
// it actually turns toward the camera.
func VisibleFaces(orientation math.Quat, viewDir math.Vec3) FaceSet {
	var set FaceSet
	for f := Face(0); f < FaceCount; f++ {
		if orientation.RotateVec3(Normals[f]).Dot(viewDir) > 0 {
			set = set.With(f)
		}
	}
	return set
}
