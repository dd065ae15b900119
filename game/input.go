package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobvolley/systems"
)

// readInput samples the keyboard into a logical input frame. Movement is
// level-triggered, everything else edge-triggered.
func readInput() systems.InputFrame {
	return systems.InputFrame{
		P1Left:  rl.IsKeyDown(rl.KeyA),
		P1Right: rl.IsKeyDown(rl.KeyD),
		P1Jump:  rl.IsKeyPressed(rl.KeyW),

		P2Left:  rl.IsKeyDown(rl.KeyLeft),
		P2Right: rl.IsKeyDown(rl.KeyRight),
		P2Jump:  rl.IsKeyPressed(rl.KeyUp),

		Pause:   rl.IsKeyPressed(rl.KeyP),
		Confirm: rl.IsKeyPressed(rl.KeyEnter),
		Cancel:  rl.IsKeyPressed(rl.KeyEscape),

		MenuUp:   rl.IsKeyPressed(rl.KeyUp),
		MenuDown: rl.IsKeyPressed(rl.KeyDown),
	}
}
