package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const cameraSnapDistance = 0.01

// CameraSystem follows the heaviest live target and keeps the view inside
// the active lock region. It runs on the frame tick.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}
	camEntity, state, ok := ecs.First(w, component.CameraStateComponent.Kind())
	if !ok {
		// no camera: requests are dropped so they don't pile up
		ecs.Drain[component.CameraMoveRequest](w)
		ecs.Drain[component.CameraInstantMoveRequest](w)
		ecs.Drain[component.LockRegionRequest](w)
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	for _, req := range ecs.Drain[component.LockRegionRequest](w) {
		state.Lock = req.Region
	}
	for _, req := range ecs.Drain[component.CameraMoveRequest](w) {
		state.UpdateTarget(req.Position, req.Weight)
	}
	for _, req := range ecs.Drain[component.CameraInstantMoveRequest](w) {
		InstantMove(state, cam, req.Position, req.Weight)
	}

	StepCamera(state, cam, dt)

	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		t.X = state.Position.X
		t.Y = state.Position.Y
	}
}

// InstantMove records the target and snaps to it unless a live target has
// a strictly greater weight.
func InstantMove(state *component.CameraState, cam *component.Camera, pos cp.Vector, weight int) {
	state.UpdateTarget(pos, weight)
	for _, t := range state.Targets {
		if t.Weight > weight {
			return
		}
	}
	state.Position = pos
	clampToLock(state, cam)
}

// StepCamera ages targets, moves toward the selected one and applies the
// lock region.
func StepCamera(state *component.CameraState, cam *component.Camera, dt float64) {
	live := state.Targets[:0]
	for _, t := range state.Targets {
		t.Age += dt
		if t.Age < cam.ForgetTime {
			live = append(live, t)
		}
	}
	state.Targets = live

	target, ok := state.Best()
	if ok {
		dir := target.Position.Sub(state.Position)
		dist := dir.Length()
		speed := cam.Speed * math.Pow(dist, cam.SpeedPow)
		speed = common.Clamp(speed, cam.MinSpeed, cam.MaxSpeed)
		step := speed * dt
		if step < dist && dist > cameraSnapDistance {
			dir = dir.Mult(step / dist)
		}
		state.Position = state.Position.Add(dir)
	}

	clampToLock(state, cam)
}

// LockBounds returns the region the camera center may occupy: the lock
// rectangle shrunk by the half viewport on each axis, never inverted.
func LockBounds(lock cp.BB, cam *component.Camera) cp.BB {
	halfH := cam.OrthoSize
	halfW := halfH * cam.Aspect
	center := lock.Center()
	ex := math.Max((lock.R-lock.L)/2-halfW, 0)
	ey := math.Max((lock.T-lock.B)/2-halfH, 0)
	return cp.NewBBForExtents(center, ex, ey)
}

func clampToLock(state *component.CameraState, cam *component.Camera) {
	if state.Lock == nil {
		return
	}
	bounds := LockBounds(*state.Lock, cam)
	state.Position.X = common.Clamp(state.Position.X, bounds.L, bounds.R)
	state.Position.Y = common.Clamp(state.Position.Y, bounds.B, bounds.T)
}

// CameraView is the composed camera transform handed to renderers.
// Rotation is in degrees.
type CameraView struct {
	Position  cp.Vector
	Rotation  float64
	OrthoSize float64
	Aspect    float64
}

// ViewOf returns the first camera's tracked position with the shake layer
// applied on top.
func ViewOf(w *ecs.World) (CameraView, bool) {
	camEntity, state, ok := ecs.First(w, component.CameraStateComponent.Kind())
	if !ok {
		return CameraView{}, false
	}
	view := CameraView{Position: state.Position}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		view.OrthoSize = cam.OrthoSize
		view.Aspect = cam.Aspect
	}
	if shake, ok := ecs.Get(w, camEntity, component.ScreenShakeComponent.Kind()); ok {
		view.Position = view.Position.Add(shake.Offset)
		view.Rotation = shake.Rotation
		view.OrthoSize += shake.Zoom
	}
	return view, true
}
