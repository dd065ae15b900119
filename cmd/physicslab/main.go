// Ball physics tuning tool - play against the CPU while adjusting
// physics parameters with live sliders.
//
// Usage: go run ./cmd/physicslab
package main

import (
	"fmt"
	"math/rand"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobvolley/systems"
)

const (
	panelWidth   = 340
	windowWidth  = 1024 + panelWidth
	windowHeight = 768
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Blob Volley Physics Lab")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyQ)
	rl.SetTargetFPS(60)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	match := systems.NewMatch(systems.DefaultParams(), rng)
	match.StartMatch(systems.ModeSinglePlayer)

	for !rl.WindowShouldClose() {
		in := systems.InputFrame{
			P1Left:  rl.IsKeyDown(rl.KeyA),
			P1Right: rl.IsKeyDown(rl.KeyD),
			P1Jump:  rl.IsKeyPressed(rl.KeyW),
		}
		match.Step(in)

		// No audio or telemetry here; discard the tick's events so the
		// queue does not grow for the life of the session.
		match.DrainEvents()

		// Leave the state machine out of the loop: a finished game
		// restarts immediately with the current slider values.
		if match.State == systems.StateGameOver {
			match.StartMatch(systems.ModeSinglePlayer)
		}
		if rl.IsKeyPressed(rl.KeyR) {
			match.StartMatch(systems.ModeSinglePlayer)
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		drawCourt(match)
		drawPanel(match)
		rl.EndDrawing()
	}
}

func drawCourt(m *systems.Match) {
	p := &m.Params

	rl.DrawRectangle(0, int32(p.GroundLevel), int32(p.Width), int32(p.Height-p.GroundLevel), rl.DarkBrown)
	net := p.NetRect()
	rl.DrawRectangle(int32(net.X), int32(net.Y), int32(net.W), int32(net.H), rl.Gray)

	rl.DrawCircleV(rl.Vector2{X: m.Player1.Pos.X, Y: m.Player1.Pos.Y}, m.Player1.Radius, rl.Blue)
	rl.DrawCircleV(rl.Vector2{X: m.Player2.Pos.X, Y: m.Player2.Pos.Y}, m.Player2.Radius, rl.Red)
	rl.DrawCircleV(rl.Vector2{X: m.Ball.Pos.X, Y: m.Ball.Pos.Y}, m.Ball.Radius, rl.Orange)
	rl.DrawCircleLines(int32(m.Ball.Pos.X), int32(m.Ball.Pos.Y), m.Ball.Radius, rl.Black)

	rl.DrawText(fmt.Sprintf("%d - %d", m.Player1.Score, m.Player2.Score), int32(p.NetX)-30, 20, 40, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("ball speed: %.2f", m.Ball.Speed()), 15, 20, 16, rl.DarkGray)
	rl.DrawText("A/D/W to play, R to reset, Q to quit", 15, int32(p.Height)-30, 16, rl.Fade(rl.White, 0.8))
}

func drawPanel(m *systems.Match) {
	panelX := float32(windowWidth - panelWidth + 15)
	panelY := float32(10)

	rl.DrawRectangle(windowWidth-panelWidth, 0, panelWidth, windowHeight, rl.Fade(rl.LightGray, 0.3))
	rl.DrawText("Ball Physics", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 35

	m.Params.BallGravity = slider(&panelY, panelX, "Gravity (fall acceleration)", m.Params.BallGravity, 0.1, 1.0)
	m.Params.BallMaxSpeed = slider(&panelY, panelX, "Max speed (hard clamp)", m.Params.BallMaxSpeed, 5, 25)
	m.Params.Restitution = slider(&panelY, panelX, "Restitution (bounce energy)", m.Params.Restitution, 0.5, 1.0)
	m.Params.TransferX = slider(&panelY, panelX, "Transfer X (blob push)", m.Params.TransferX, 0, 1.5)
	m.Params.TransferY = slider(&panelY, panelX, "Transfer Y (blob lift)", m.Params.TransferY, 0, 1.5)
	m.Params.SpikeBoost = slider(&panelY, panelX, "Spike boost (extra downforce)", m.Params.SpikeBoost, 0, 8)
	m.Params.NetDamping = slider(&panelY, panelX, "Net damping (post energy loss)", m.Params.NetDamping, 0.5, 1.0)

	rl.DrawLine(int32(panelX), int32(panelY), windowWidth-15, int32(panelY), rl.Gray)
	panelY += 15

	rl.DrawText("Blob Movement", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 35

	m.Params.MoveSpeed = slider(&panelY, panelX, "Move speed", m.Params.MoveSpeed, 1, 10)
	m.Params.JumpForce = slider(&panelY, panelX, "Jump force (negative is up)", m.Params.JumpForce, -20, -5)
	m.Params.PlayerGravity = slider(&panelY, panelX, "Gravity", m.Params.PlayerGravity, 0.2, 2.0)
}

// slider draws a labeled SliderBar and advances the panel cursor.
func slider(panelY *float32, panelX float32, label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: panelWidth - 100, Height: 20},
		fmt.Sprintf("%.1f", min), fmt.Sprintf("%.1f", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", v), int32(panelX+panelWidth-75), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35
	return v
}
