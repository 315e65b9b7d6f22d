package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Viewport maps y-up world units to screen pixels through a camera view.
type Viewport struct {
	View   CameraView
	Width  float64
	Height float64
}

// PixelsPerUnit is the screen height divided by the view's full height.
func (v Viewport) PixelsPerUnit() float64 {
	ortho := v.View.OrthoSize
	if ortho <= 0 {
		ortho = 1
	}
	return v.Height / (2 * ortho)
}

func (v Viewport) ToScreen(p cp.Vector) (float32, float32) {
	d := p.Sub(v.View.Position)
	if v.View.Rotation != 0 {
		d = cp.ForAngle(-common.Deg2Rad(v.View.Rotation)).Rotate(d)
	}
	ppu := v.PixelsPerUnit()
	return float32(v.Width/2 + d.X*ppu), float32(v.Height/2 - d.Y*ppu)
}

// RenderSystem draws solids, lock zones and controlled bodies as outlines,
// plus an optional motion HUD.
type RenderSystem struct {
	HUD  bool
	face *ebtext.GoXFace
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	view, ok := ViewOf(w)
	if !ok {
		view = CameraView{OrthoSize: 1}
	}
	bounds := screen.Bounds()
	vp := Viewport{View: view, Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}

	screen.Fill(colornames.Midnightblue)

	ecs.ForEach(w, component.LockZoneComponent.Kind(), func(_ ecs.Entity, zone *component.LockZone) {
		clr := colornames.Slategray
		if zone.Occupied() {
			clr = colornames.Gold
		}
		strokeBB(screen, vp, zone.Bounds, 1, clr)
	})

	ecs.ForEach2(w, component.SolidTagComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, _ *component.SolidTag, body *component.PhysicsBody) {
		if body.Shape == nil {
			return
		}
		var clr color.Color = colornames.Lightgrey
		if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
			clr = layerColor(layer.Category)
		}
		strokeBB(screen, vp, body.Shape.BB(), 2, clr)
	})

	ecs.ForEach2(w, component.MotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, m *component.Motion, body *component.PhysicsBody) {
		if body.Body == nil {
			return
		}
		clr := colornames.White
		switch {
		case m.Dashing():
			clr = colornames.Orangered
		case m.OnWall:
			clr = colornames.Mediumpurple
		case m.Grounded:
			clr = colornames.Limegreen
		}
		corners := colliderBox(w, e, body).Corners()
		strokePoly(screen, vp, corners[:], 2, clr)
	})

	if r.HUD {
		r.drawHUD(w, screen)
	}
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	player, m, ok := ecs.First(w, component.MotionComponent.Kind())
	if !ok {
		return
	}
	var v cp.Vector
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		v = body.Body.Velocity()
	}
	lines := fmt.Sprintf("grounded: %v\nwall: %d (%.2fs)\njumps: %d wall jumps: %d dashes: %d\nvelocity: (%.2f, %.2f)\nFPS: %.1f",
		m.Grounded, m.WallSide, m.OnWallTime, m.Jumps, m.WallJumps, m.Dashes, v.X, v.Y, ebiten.ActualFPS())

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, lines, r.face, op)
}

func layerColor(category uint) color.Color {
	switch category {
	case component.LayerSlide:
		return colornames.Lightskyblue
	case component.LayerBump:
		return colornames.Sandybrown
	}
	return colornames.Lightgrey
}

func strokeBB(screen *ebiten.Image, vp Viewport, bb cp.BB, width float32, clr color.Color) {
	strokePoly(screen, vp, []cp.Vector{
		{X: bb.L, Y: bb.B},
		{X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T},
		{X: bb.L, Y: bb.T},
	}, width, clr)
}

func strokePoly(screen *ebiten.Image, vp Viewport, verts []cp.Vector, width float32, clr color.Color) {
	for i := range verts {
		x1, y1 := vp.ToScreen(verts[i])
		x2, y2 := vp.ToScreen(verts[(i+1)%len(verts)])
		vector.StrokeLine(screen, x1, y1, x2, y2, width, clr, true)
	}
}
