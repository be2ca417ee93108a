package component

import "github.com/go-gl/mathgl/mgl32"

// Transform places an entity in world space. Y is up; the board lies in
// the X/Z plane with X = i and Z = j.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

func NewTransform(x, y, z float32) Transform {
	return Transform{Translation: mgl32.Vec3{x, y, z}, Rotation: mgl32.QuatIdent()}
}

var TransformComponent = NewComponent[Transform]()

type ModelKind string

const (
	ModelTile   ModelKind = "tile"
	ModelPlayer ModelKind = "player"
	ModelCake   ModelKind = "cake"
)

// Model is the opaque visual attached to a transform.
type Model struct {
	Kind ModelKind
}

var ModelComponent = NewComponent[Model]()
