package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/blobvolley/components"
	"github.com/pthm-cable/blobvolley/systems"
)

var menuLabels = [...]string{
	systems.MenuSinglePlayer: "Single Player",
	systems.MenuTwoPlayer:    "Two Players",
	systems.MenuCredits:      "Credits",
	systems.MenuExit:         "Exit",
}

func (g *Game) drawMenu() {
	p := &g.match.Params
	cx := int32(p.Width / 2)

	title := "BLOB VOLLEY"
	tw := rl.MeasureText(title, 80)
	rl.DrawText(title, cx-tw/2+4, 124, 80, rl.Fade(rl.Black, 0.3))
	rl.DrawText(title, cx-tw/2, 120, 80, rl.Gold)

	for i, label := range menuLabels {
		y := int32(320 + i*70)
		col := rl.LightGray
		size := int32(30)
		if i == g.match.MenuSelection {
			col = rl.Orange
			size = 36
			w := rl.MeasureText(label, size)
			rl.DrawText(">", cx-w/2-40, y, size, rl.Orange)
		}
		w := rl.MeasureText(label, size)
		rl.DrawText(label, cx-w/2, y, size, col)
	}

	hint := "UP/DOWN to select, ENTER to confirm"
	hw := rl.MeasureText(hint, 20)
	rl.DrawText(hint, cx-hw/2, int32(p.Height)-100, 20, rl.Gray)

	controls := "P1: A/D/W    P2: arrow keys"
	cw := rl.MeasureText(controls, 20)
	rl.DrawText(controls, cx-cw/2, int32(p.Height)-60, 20, rl.DarkGray)
}

func (g *Game) drawWinnerBanner() {
	p := &g.match.Params
	cx := int32(p.Width / 2)

	rl.DrawRectangle(0, 0, int32(p.Width), int32(p.Height), rl.Fade(rl.Black, 0.5))

	var text string
	var col rl.Color
	switch g.match.Winner() {
	case components.SideLeft:
		text = "BLUE WINS!"
		col = rl.Blue
	case components.SideRight:
		if g.match.Mode == systems.ModeSinglePlayer {
			text = "CPU WINS!"
		} else {
			text = "RED WINS!"
		}
		col = rl.Red
	}

	tw := rl.MeasureText(text, 60)
	rl.DrawText(text, cx-tw/2, int32(p.Height/2)-80, 60, col)

	score := fmt.Sprintf("%d - %d", g.match.Player1.Score, g.match.Player2.Score)
	sw := rl.MeasureText(score, 40)
	rl.DrawText(score, cx-sw/2, int32(p.Height/2), 40, rl.White)

	hint := "Press ENTER to return to menu"
	hw := rl.MeasureText(hint, 20)
	rl.DrawText(hint, cx-hw/2, int32(p.Height/2)+80, 20, rl.LightGray)
}

var creditLines = []string{
	"BLOB VOLLEY",
	"",
	"",
	"Programming",
	"the blobvolley team",
	"",
	"Physics & Gameplay",
	"the blobvolley team",
	"",
	"Built with raylib",
	"",
	"",
	"Thanks for playing!",
}

func (g *Game) drawCredits() {
	p := &g.match.Params
	cx := int32(p.Width / 2)

	y := g.match.CreditsScroll
	for i, line := range creditLines {
		size := int32(24)
		col := rl.LightGray
		if i == 0 {
			size = 48
			col = rl.Gold
		} else if line != "" && i > 0 && creditLines[i-1] == "" && i+1 < len(creditLines) && creditLines[i+1] != "" {
			// Section headers sit between a blank line and their entry
			col = rl.Orange
		}
		w := rl.MeasureText(line, size)
		rl.DrawText(line, cx-w/2, int32(y), size, col)
		y += float32(size) + 16
	}

	hint := "Press ENTER or ESC to return"
	hw := rl.MeasureText(hint, 20)
	rl.DrawText(hint, cx-hw/2, int32(p.Height)-40, 20, rl.Gray)
}
