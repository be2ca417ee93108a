package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/cakechase/ecs"
	"github.com/milk9111/cakechase/ecs/component"
)

const (
	tileHalf     = 0.45
	playerRadius = 0.3
	cakeRadius   = 0.22
)

// RenderSystem draws the board and its entities through the active camera
// rig's perspective projection.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawItem struct {
	e     ecs.Entity
	t     *component.Transform
	kind  component.ModelKind
	depth float32
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	camT, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	proj, ok := ecs.Get(w, r.camEntity, component.ProjectionComponent.Kind())
	if !ok {
		return
	}

	bounds := screen.Bounds()
	proj.Width = float32(bounds.Dx())
	proj.Height = float32(bounds.Dy())
	if proj.Height > 0 {
		proj.Aspect = proj.Width / proj.Height
	}

	vp := ViewProjection(camT, proj)

	var items []drawItem
	ecs.ForEach2(w, component.ModelComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Model, t *component.Transform) {
		clip := vp.Mul4x1(t.Translation.Vec4(1))
		items = append(items, drawItem{e: e, t: t, kind: m.Kind, depth: clip.W()})
	})
	sort.SliceStable(items, func(i, j int) bool {
		// Tiles first, then far to near.
		ti, tj := items[i].kind == component.ModelTile, items[j].kind == component.ModelTile
		if ti != tj {
			return ti
		}
		if items[i].depth != items[j].depth {
			return items[i].depth > items[j].depth
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		switch it.kind {
		case component.ModelTile:
			drawTile(screen, vp, proj, it.t.Translation)
		case component.ModelPlayer:
			drawMarker(screen, vp, proj, it.t, playerRadius, colornames.Gold, true)
		case component.ModelCake:
			drawMarker(screen, vp, proj, it.t, cakeRadius, colornames.Hotpink, false)
		}
	}
}

// ViewProjection is the combined perspective and inverse camera transform.
func ViewProjection(camT *component.Transform, proj *component.Projection) mgl32.Mat4 {
	pos := camT.Translation
	view := camT.Rotation.Conjugate().Mat4().Mul4(mgl32.Translate3D(-pos.X(), -pos.Y(), -pos.Z()))
	return mgl32.Perspective(proj.FOV, proj.Aspect, proj.Near, proj.Far).Mul4(view)
}

// ToScreen projects a world point to pixels. ok is false for points at or
// behind the near plane.
func ToScreen(vp mgl32.Mat4, proj *component.Projection, p mgl32.Vec3) (float32, float32, float32, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= proj.Near {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) / 2 * proj.Width
	y := (1 - ndc.Y()) / 2 * proj.Height
	return x, y, clip.W(), true
}

func drawTile(screen *ebiten.Image, vp mgl32.Mat4, proj *component.Projection, c mgl32.Vec3) {
	corners := [4]mgl32.Vec3{
		{c.X() - tileHalf, c.Y(), c.Z() - tileHalf},
		{c.X() + tileHalf, c.Y(), c.Z() - tileHalf},
		{c.X() + tileHalf, c.Y(), c.Z() + tileHalf},
		{c.X() - tileHalf, c.Y(), c.Z() + tileHalf},
	}
	var xs, ys [4]float32
	for i, corner := range corners {
		x, y, _, ok := ToScreen(vp, proj, corner)
		if !ok {
			return
		}
		xs[i], ys[i] = x, y
	}
	for i := range corners {
		n := (i + 1) % len(corners)
		vector.StrokeLine(screen, xs[i], ys[i], xs[n], ys[n], 1, colornames.Darkolivegreen, true)
	}
}

func drawMarker(screen *ebiten.Image, vp mgl32.Mat4, proj *component.Projection, t *component.Transform, radius float32, clr color.Color, facing bool) {
	x, y, depth, ok := ToScreen(vp, proj, t.Translation)
	if !ok {
		return
	}
	r := radius * proj.Height / (2 * float32(math.Tan(float64(proj.FOV)/2)) * depth)
	vector.FillCircle(screen, x, y, r, clr, true)

	if !facing {
		return
	}
	tip := t.Translation.Add(t.Rotation.Rotate(mgl32.Vec3{0, 0, radius * 1.6}))
	if tx, ty, _, ok := ToScreen(vp, proj, tip); ok {
		vector.StrokeLine(screen, x, y, tx, ty, 2, colornames.Darkorange, true)
	}
}
