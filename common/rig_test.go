package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

const eps = 1e-4

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestZoomIsMultiplicative(t *testing.T) {
	tests := []struct {
		name   string
		radius float32
		scroll float64
		ticks  int
	}{
		{"one_notch", 10, 1, 1},
		{"five_notches", 10, 1, 5},
		{"half_notches", 4, 0.5, 8},
		{"zoom_out", 3, -2, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.radius
			for i := 0; i < tc.ticks; i++ {
				r = Zoom(r, tc.scroll)
			}
			want := float64(tc.radius) * math.Pow(1-0.01*tc.scroll, float64(tc.ticks))
			if math.Abs(float64(r)-want) > eps*want {
				t.Fatalf("expected %v, got %v", want, r)
			}
		})
	}
}

func TestZoomFloor(t *testing.T) {
	r := float32(1)
	for i := 0; i < 10000; i++ {
		r = Zoom(r, 50)
		if r < MinRigRadius {
			t.Fatalf("radius %v dropped below floor", r)
		}
	}
	if r != MinRigRadius {
		t.Fatalf("expected radius to settle on the floor, got %v", r)
	}
}

func TestRigPosition(t *testing.T) {
	focus := mgl32.Vec3{1, 2, 3}
	if got := RigPosition(focus, mgl32.QuatIdent(), 5); !vecNear(got, mgl32.Vec3{1, 2, 8}) {
		t.Fatalf("identity rig: got %v", got)
	}

	rot := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	got := RigPosition(focus, rot, 2)
	if !vecNear(got, mgl32.Vec3{3, 2, 3}) {
		t.Fatalf("yawed rig: got %v", got)
	}
	if d := got.Sub(focus).Len(); math.Abs(float64(d-2)) > eps {
		t.Fatalf("expected distance 2, got %v", d)
	}
}

func TestLookToPointsForwardAlongDir(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, -1}},
		{"diagonal", mgl32.Vec3{9, -1.5, 5}},
		{"sideways", mgl32.Vec3{1, 0, 0}},
		{"straight_down", mgl32.Vec3{0, -3, 0}},
		{"straight_up", mgl32.Vec3{0, 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := LookTo(tc.dir, mgl32.Vec3{0, 1, 0})
			forward := q.Rotate(mgl32.Vec3{0, 0, -1})
			if !vecNear(forward, tc.dir.Normalize()) {
				t.Fatalf("expected forward %v, got %v", tc.dir.Normalize(), forward)
			}
			if l := q.Len(); math.Abs(float64(l-1)) > eps {
				t.Fatalf("expected unit quaternion, got length %v", l)
			}
		})
	}
}

func TestLookToKeepsUpright(t *testing.T) {
	q := LookTo(mgl32.Vec3{9, -1.5, 5}, mgl32.Vec3{0, 1, 0})
	if IsUpsideDown(q) {
		t.Fatal("look-to with world up should not be upside down")
	}
	if right := q.Rotate(mgl32.Vec3{1, 0, 0}); math.Abs(float64(right.Y())) > eps {
		t.Fatalf("expected level right axis, got %v", right)
	}
}

func TestIsUpsideDown(t *testing.T) {
	tests := []struct {
		name string
		rot  mgl32.Quat
		want bool
	}{
		{"identity", mgl32.QuatIdent(), false},
		{"flipped", mgl32.QuatRotate(math.Pi, mgl32.Vec3{1, 0, 0}), true},
		{"tilted", mgl32.QuatRotate(0.4, mgl32.Vec3{1, 0, 0}), false},
		{"past_vertical", mgl32.QuatRotate(2, mgl32.Vec3{1, 0, 0}), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsUpsideDown(tc.rot); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestOrbitYaw(t *testing.T) {
	const width, height = 800, 600
	quarter := cp.Vector{X: width / 4}

	upright := Orbit(mgl32.QuatIdent(), quarter, width, height, false)
	if f := upright.Rotate(mgl32.Vec3{0, 0, -1}); !vecNear(f, mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("expected quarter turn to face +X, got %v", f)
	}

	inverted := Orbit(mgl32.QuatIdent(), quarter, width, height, true)
	if f := inverted.Rotate(mgl32.Vec3{0, 0, -1}); !vecNear(f, mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("expected inverted quarter turn to face -X, got %v", f)
	}

	if got := Orbit(upright, quarter, 0, height, false); got != upright {
		t.Fatal("zero viewport should leave rotation unchanged")
	}
}

func TestOrbitPitchIsLocal(t *testing.T) {
	const width, height = 800, 600
	yawed := mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{0, 1, 0})
	// Half the viewport height pitches a quarter turn about the rig's own
	// right axis, which after the yaw is world -Z.
	got := Orbit(yawed, cp.Vector{Y: height / 2}, width, height, false)
	right := got.Rotate(mgl32.Vec3{1, 0, 0})
	if !vecNear(right, mgl32.Vec3{0, 0, -1}) {
		t.Fatalf("pitch should keep the local right axis, got %v", right)
	}
	if up := got.Rotate(mgl32.Vec3{0, 1, 0}); math.Abs(float64(up.Y())) > eps {
		t.Fatalf("expected up axis on the horizon after quarter pitch, got %v", up)
	}
}

func TestPan(t *testing.T) {
	focus := mgl32.Vec3{1, 1, 1}
	tests := []struct {
		name   string
		motion cp.Vector
		radius float32
		proj   Frustum
		want   mgl32.Vec3
	}{
		{"ortho_right", cp.Vector{X: 10}, 2, Frustum{Ortho: true}, mgl32.Vec3{-19, 1, 1}},
		{"ortho_up", cp.Vector{Y: 10}, 2, Frustum{Ortho: true}, mgl32.Vec3{1, 21, 1}},
		{"perspective", cp.Vector{X: 10, Y: 10}, 2, Frustum{FOV: 1, Aspect: 2, Width: 100, Height: 50}, mgl32.Vec3{0.6, 1.4, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Pan(focus, mgl32.QuatIdent(), tc.motion, tc.radius, tc.proj)
			if !vecNear(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
