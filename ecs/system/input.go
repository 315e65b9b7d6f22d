package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const stickDeadzone = 0.2

// IntentReader samples the device state for one tick.
type IntentReader func() component.Input

// InputSystem copies the device intent into every Input component and
// publishes jump/dash edges as events.
type InputSystem struct {
	Read IntentReader

	prevJump bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{Read: ReadDevices}
}

func (i *InputSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	read := i.Read
	if read == nil {
		read = ReadDevices
	}
	in := read()
	in.JumpPressed = in.JumpPressed || (in.Jump && !i.prevJump)
	in.JumpReleased = in.JumpReleased || (!in.Jump && i.prevJump)
	i.prevJump = in.Jump

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = in
		if in.JumpPressed {
			ecs.Emit(w, component.JumpStartEvent{Entity: uint64(e)})
		}
		if in.JumpReleased {
			ecs.Emit(w, component.JumpEndEvent{Entity: uint64(e)})
		}
		if in.DashPressed {
			ecs.Emit(w, component.DashStartEvent{Entity: uint64(e)})
		}
	})
}

// ReadDevices maps keyboard and the first standard gamepad to intent.
// Intent is y-up.
func ReadDevices() component.Input {
	var in component.Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY -= 1
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.DashPressed = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyK)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			// gamepad sticks are y-down
			in.MoveX = lx
			in.MoveY = -ly
		}
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.DashPressed = in.DashPressed ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return in
}
