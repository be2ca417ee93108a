package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

const (
	// MinRigRadius keeps the camera off its focus point.
	MinRigRadius float32 = 0.05

	zoomScrollScale float32 = 0.05
	zoomRate        float32 = 0.2
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
)

// Orbit applies mouse motion as yaw about world Y (pre-multiplied) and
// pitch about the rig's local X (post-multiplied). Horizontal motion is
// inverted while the rig is upside down.
func Orbit(rot mgl32.Quat, motion cp.Vector, width, height float32, upsideDown bool) mgl32.Quat {
	if width <= 0 || height <= 0 {
		return rot
	}
	dx := float32(motion.X) / width * math.Pi * 2
	if upsideDown {
		dx = -dx
	}
	dy := float32(motion.Y) / height * math.Pi

	yaw := mgl32.QuatRotate(-dx, axisY)
	pitch := mgl32.QuatRotate(-dy, axisX)

	rot = yaw.Mul(rot)
	rot = rot.Mul(pitch)
	return rot.Normalize()
}

// Pan moves the focus along the rig's local right and up axes. Motion is
// normalised by field of view and viewport so pan speed does not depend on
// resolution, then scaled by radius so it tracks the zoom level.
func Pan(focus mgl32.Vec3, rot mgl32.Quat, motion cp.Vector, radius float32, proj Frustum) mgl32.Vec3 {
	px := float32(motion.X)
	py := float32(motion.Y)
	if !proj.Ortho && proj.Width > 0 && proj.Height > 0 {
		px *= proj.FOV * proj.Aspect / proj.Width
		py *= proj.FOV / proj.Height
	}

	right := rot.Rotate(axisX).Mul(-px)
	up := rot.Rotate(axisY).Mul(py)
	return focus.Add(right.Add(up).Mul(radius))
}

// Frustum is the subset of the projection the pan math needs.
type Frustum struct {
	FOV    float32
	Aspect float32
	Width  float32
	Height float32
	Ortho  bool
}

// Zoom shrinks or grows radius by 20% per unit of scaled scroll and clamps
// it to MinRigRadius.
func Zoom(radius float32, notches float64) float32 {
	s := float32(notches) * zoomScrollScale
	radius -= s * radius * zoomRate
	if radius < MinRigRadius {
		radius = MinRigRadius
	}
	return radius
}

// RigPosition places the camera radius units along its local +Z from the
// focus, emulating a child offset under a rotating parent.
func RigPosition(focus mgl32.Vec3, rot mgl32.Quat, radius float32) mgl32.Vec3 {
	m := rot.Mat4().Mat3()
	return focus.Add(m.Mul3x1(mgl32.Vec3{0, 0, radius}))
}

// IsUpsideDown reports whether the rig's local up axis points at or below
// the horizon.
func IsUpsideDown(rot mgl32.Quat) bool {
	return rot.Rotate(axisY).Y() <= 0
}

// LookTo builds an orientation whose -Z axis points along dir with the
// given up hint.
func LookTo(dir, up mgl32.Vec3) mgl32.Quat {
	back, ok := tryNormalize(dir.Mul(-1))
	if !ok {
		back = mgl32.Vec3{0, 0, 1}
	}
	upN, ok := tryNormalize(up)
	if !ok {
		upN = axisY
	}
	right, ok := tryNormalize(upN.Cross(back))
	if !ok {
		right = anyOrthonormal(upN)
	}
	upN = back.Cross(right)

	m := mgl32.Mat3FromCols(right, upN, back)
	return mgl32.Mat4ToQuat(m.Mat4()).Normalize()
}

func tryNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l <= 1e-12 || math.IsNaN(float64(l)) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// anyOrthonormal returns a unit vector orthogonal to the unit vector v.
func anyOrthonormal(v mgl32.Vec3) mgl32.Vec3 {
	sign := float32(math.Copysign(1, float64(v.Z())))
	a := -1 / (sign + v.Z())
	b := v.X() * v.Y() * a
	return mgl32.Vec3{1 + sign*v.X()*v.X()*a, sign * b, -sign * v.X()}
}
