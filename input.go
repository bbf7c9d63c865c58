package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/frogger/ecs"
)

// keyBindings maps world keys to the ebiten keys and gamepad buttons that
// hold them down.
var keyBindings = []struct {
	key     ecs.Key
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}{
	{ecs.KeyUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	{ecs.KeyDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	{ecs.KeyLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	{ecs.KeyRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	{ecs.KeySpace, []ebiten.Key{ebiten.KeySpace}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	{ecs.KeyEnter, []ebiten.Key{ebiten.KeyEnter}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}},
}

// pollInput copies the current keyboard and first gamepad state into w.
func pollInput(w *ecs.World) {
	gamepads := ebiten.GamepadIDs()
	for _, b := range keyBindings {
		down := false
		for _, k := range b.keys {
			down = down || ebiten.IsKeyPressed(k)
		}
		if len(gamepads) > 0 {
			for _, btn := range b.buttons {
				down = down || ebiten.IsStandardGamepadButtonPressed(gamepads[0], btn)
			}
		}
		if down {
			w.PressKey(b.key)
		} else {
			w.ReleaseKey(b.key)
		}
	}
}
