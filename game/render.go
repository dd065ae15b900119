package game

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobvolley/components"
	"github.com/pthm-cable/blobvolley/systems"
)

// textureBank holds optional sprite textures. Zero-ID textures fall back
// to procedural drawing, matching the behavior when resources are absent.
type textureBank struct {
	background rl.Texture2D
	ball       rl.Texture2D
}

func newTextureBank() *textureBank {
	return &textureBank{
		background: rl.LoadTexture("resources/background.png"),
		ball:       rl.LoadTexture("resources/ball.png"),
	}
}

func (t *textureBank) unload() {
	if t.background.ID > 0 {
		rl.UnloadTexture(t.background)
	}
	if t.ball.ID > 0 {
		rl.UnloadTexture(t.ball)
	}
}

// Draw renders the current frame. The match state is read-only here; all
// mutation happens in Update.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	if g.tex != nil && g.tex.background.ID > 0 {
		rl.DrawTexture(g.tex.background, 0, 0, rl.Gray)
	}

	m := g.match
	switch m.State {
	case systems.StateMenu:
		g.drawMenu()
	case systems.StatePlaying:
		g.drawScene()
		g.drawScore()
		if m.Paused {
			g.drawPauseOverlay()
		}
	case systems.StateGameOver:
		g.drawScene()
		g.drawScore()
		g.drawWinnerBanner()
	case systems.StateCredits:
		g.drawCredits()
	}

	rl.EndDrawing()
}

// drawScene renders the court, blobs, particles and ball.
func (g *Game) drawScene() {
	g.drawGround()
	g.drawNet()

	g.drawPlayerShadow(&g.match.Player1)
	g.drawPlayerShadow(&g.match.Player2)

	g.drawPlayer(&g.match.Player1, rl.Blue)
	g.drawPlayer(&g.match.Player2, rl.Red)

	g.drawParticles()

	g.drawBallTrail()
	g.drawBall()
}

func (g *Game) drawGround() {
	p := &g.match.Params
	ground := int32(p.GroundLevel)
	rl.DrawRectangle(0, ground, int32(p.Width), int32(p.Height)-ground, rl.DarkBrown)
	rl.DrawLineEx(
		rl.Vector2{X: 0, Y: p.GroundLevel},
		rl.Vector2{X: p.Width, Y: p.GroundLevel},
		3, rl.Green,
	)
}

func (g *Game) drawNet() {
	p := &g.match.Params
	net := p.NetRect()

	// Pole shadow cast on the ground
	rl.DrawLineEx(
		rl.Vector2{X: net.X + net.W, Y: p.GroundLevel},
		rl.Vector2{X: net.X + net.W + 15, Y: p.GroundLevel},
		8, rl.Fade(rl.Black, 0.3),
	)

	// Gradient post with a capped top
	rl.DrawRectangle(int32(net.X)-2, int32(net.Y), 2, int32(net.H), rl.Fade(rl.Black, 0.4))
	rl.DrawRectangleGradientH(int32(net.X), int32(net.Y), int32(net.W), int32(net.H), rl.Gray, rl.White)
	rl.DrawRectangle(int32(net.X+net.W)-1, int32(net.Y), 1, int32(net.H), rl.Fade(rl.DarkGray, 0.5))
	rl.DrawRectangle(int32(net.X)-2, int32(net.Y)-5, int32(net.W)+4, 5, rl.Orange)
	rl.DrawRectangle(int32(net.X)-2, int32(net.Y)-5, int32(net.W)+4, 2, rl.LightGray)
}

// drawPlayer renders a blob with an outline and a moving highlight.
func (g *Game) drawPlayer(pl *components.Player, col rl.Color) {
	pulse := 0.4 + float32(math.Sin(float64(g.match.Frames())*0.05))*0.1

	center := rl.Vector2{X: pl.Pos.X, Y: pl.Pos.Y}
	rl.DrawCircleV(center, pl.Radius, col)
	rl.DrawCircleLines(int32(pl.Pos.X), int32(pl.Pos.Y), pl.Radius, rl.Black)
	rl.DrawCircleLines(int32(pl.Pos.X), int32(pl.Pos.Y), pl.Radius-2, rl.Fade(rl.White, 0.3))

	// Highlight drifts with motion for a lively look
	hx := pl.Pos.X - pl.Radius*0.35 + pl.Vel.X*0.5
	hy := pl.Pos.Y - pl.Radius*0.35 - float32(math.Abs(float64(pl.Vel.Y)))*0.3
	rl.DrawCircleGradient(rl.Vector2{X: hx, Y: hy}, pl.Radius*0.25,
		rl.Fade(rl.White, pulse*0.8), rl.Fade(rl.White, 0))
}

// drawPlayerShadow draws the ground shadow, shrinking with jump height.
func (g *Game) drawPlayerShadow(pl *components.Player) {
	p := &g.match.Params

	height := p.GroundLevel - pl.Pos.Y - pl.Radius
	scale := 1 - height/200
	if scale < 0.4 {
		scale = 0.4
	}
	if scale > 1 {
		scale = 1
	}

	rl.DrawEllipse(int32(pl.Pos.X), int32(p.GroundLevel-pl.Radius*0.3),
		pl.Radius*scale*1.2, pl.Radius*scale*0.5,
		rl.Fade(rl.Black, 0.3*scale))
}

func (g *Game) drawBallTrail() {
	ball := &g.match.Ball
	for i := 0; i < ball.TrailCount; i++ {
		t := float32(i) / components.TrailLength
		alpha := 1 - t
		radius := ball.Radius * (1 - t*0.5)
		rl.DrawCircleV(rl.Vector2{X: ball.Trail[i].X, Y: ball.Trail[i].Y},
			radius, rl.Fade(rl.LightGray, alpha*0.6))
	}
}

// drawBall renders the spinning ball: a textured sprite when available,
// otherwise a gradient sphere with rotating stripes.
func (g *Game) drawBall() {
	ball := &g.match.Ball

	// Drop shadow for depth
	rl.DrawCircleV(rl.Vector2{X: ball.Pos.X + ball.Radius*0.15, Y: ball.Pos.Y + ball.Radius*0.15},
		ball.Radius, rl.Fade(rl.Black, 0.15))

	if g.tex != nil && g.tex.ball.ID > 0 {
		diameter := ball.Radius * 2
		src := rl.Rectangle{Width: float32(g.tex.ball.Width), Height: float32(g.tex.ball.Height)}
		dst := rl.Rectangle{X: ball.Pos.X, Y: ball.Pos.Y, Width: diameter, Height: diameter}
		origin := rl.Vector2{X: ball.Radius, Y: ball.Radius}
		rl.DrawTexturePro(g.tex.ball, src, dst, origin, ball.Rotation, rl.White)
		return
	}

	center := rl.Color{R: 255, G: 255, B: 255, A: 255}
	edge := rl.Color{R: 255, G: 140, B: 60, A: 255}
	rl.DrawCircleGradient(rl.Vector2{X: ball.Pos.X, Y: ball.Pos.Y}, ball.Radius, center, edge)

	g.drawBallStripes()

	// Shading and highlight for a spherical look
	rl.DrawCircleGradient(rl.Vector2{X: ball.Pos.X + ball.Radius*0.4, Y: ball.Pos.Y + ball.Radius*0.4},
		ball.Radius*0.6, rl.Fade(rl.Blank, 0), rl.Fade(rl.Orange, 0.3))

	hx := ball.Pos.X - ball.Radius*0.35
	hy := ball.Pos.Y - ball.Radius*0.35
	rl.DrawCircleV(rl.Vector2{X: hx, Y: hy}, ball.Radius*0.3, rl.Fade(rl.White, 0.5))
	rl.DrawCircleV(rl.Vector2{X: hx, Y: hy}, ball.Radius*0.18, rl.Fade(rl.White, 0.7))
	rl.DrawCircleV(rl.Vector2{X: hx, Y: hy}, ball.Radius*0.08, rl.Fade(rl.White, 0.9))

	rl.DrawCircleLines(int32(ball.Pos.X), int32(ball.Pos.Y), ball.Radius, rl.Fade(rl.Orange, 0.3))
}

// drawBallStripes draws curved stripes rotated by the ball's spin.
func (g *Game) drawBallStripes() {
	ball := &g.match.Ball
	stripe := rl.Color{R: 220, G: 100, B: 40, A: 200}
	const numStripes = 4
	const segments = 16

	for i := 0; i < numStripes; i++ {
		angle := float64(ball.Rotation+float32(i)*360/numStripes) * rl.Deg2rad

		for seg := 0; seg < segments-1; seg++ {
			t1 := float64(seg) / (segments - 1)
			t2 := float64(seg+1) / (segments - 1)

			c1 := (t1 - 0.5) * 160 * rl.Deg2rad
			c2 := (t2 - 0.5) * 160 * rl.Deg2rad

			r1 := float64(ball.Radius) * (0.85 - math.Abs(t1-0.5)*0.4)
			r2 := float64(ball.Radius) * (0.85 - math.Abs(t2-0.5)*0.4)

			p1 := rl.Vector2{
				X: ball.Pos.X + float32(math.Cos(angle+c1)*r1),
				Y: ball.Pos.Y + float32(math.Sin(angle+c1)*r1),
			}
			p2 := rl.Vector2{
				X: ball.Pos.X + float32(math.Cos(angle+c2)*r2),
				Y: ball.Pos.Y + float32(math.Sin(angle+c2)*r2),
			}

			// Stripes fade out toward the rim
			alpha := 1 - math.Abs(t1-0.5)*1.2
			if alpha > 0 {
				rl.DrawLineEx(p1, p2, 2.5, rl.Fade(stripe, float32(alpha)))
			}
		}
	}
}

func (g *Game) drawParticles() {
	for _, pt := range g.match.Particles.Slots() {
		if !pt.Active {
			continue
		}
		size := 3 * pt.Life
		rl.DrawCircleV(rl.Vector2{X: pt.Pos.X, Y: pt.Pos.Y}, size,
			rl.Fade(rl.DarkBrown, pt.Alpha))
	}
}

func (g *Game) drawScore() {
	p := &g.match.Params

	rl.DrawText(fmt.Sprintf("%d", g.match.Player1.Score), int32(p.Width/4)-20, 30, 60, rl.Blue)
	rl.DrawText(fmt.Sprintf("%d", g.match.Player2.Score), int32(p.Width*3/4)-20, 30, 60, rl.Red)
	rl.DrawText("-", int32(p.Width/2)-10, 30, 60, rl.LightGray)

	totalSeconds := g.match.Timer / 60
	timer := fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
	w := rl.MeasureText(timer, 30)
	rl.DrawText(timer, int32(p.Width/2)-w/2, 100, 30, rl.White)
}

func (g *Game) drawPauseOverlay() {
	p := &g.match.Params
	rl.DrawText("PAUSED", int32(p.Width/2)-60, int32(p.Height/2), 40, rl.Gray)
	rl.DrawText("Press P to continue", int32(p.Width/2)-100, int32(p.Height/2)+50, 20, rl.LightGray)
}
