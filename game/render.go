package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/petri-sim/petri/config"
)

// Render colors
var (
	backgroundColor = rl.NewColor(173, 216, 230, 255) // light sky blue
	foodColor       = rl.NewColor(76, 175, 80, 255)
)

// Draw renders the simulation state after a completed tick: food first,
// then life forms with an energy bar, then the HUD.
func (g *Game) Draw() {
	cfg := config.Cfg()

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	foodRadius := float32(cfg.Food.Radius)
	for i := range g.world.Food {
		f := &g.world.Food[i]
		rl.DrawCircleV(rl.Vector2{X: float32(f.X), Y: float32(f.Y)}, foodRadius, foodColor)
	}

	radius := float32(cfg.Entity.Radius)
	for i := range g.world.LifeForms {
		lf := &g.world.LifeForms[i]
		if lf.Energy <= 0 {
			continue
		}

		pos := rl.Vector2{X: float32(lf.X), Y: float32(lf.Y)}
		rl.DrawCircleV(pos, radius, rl.NewColor(lf.Color.R, lf.Color.G, lf.Color.B, 255))

		// Energy bar above the body, green fading to red as energy drains
		frac := lf.Energy / cfg.Entity.MaxEnergy
		barColor := rl.NewColor(uint8(255*(1-frac)), uint8(255*frac), 0, 255)
		rl.DrawRectangle(
			int32(lf.X)-int32(radius),
			int32(lf.Y)-int32(radius)-5,
			int32(2*float64(radius)*frac),
			3,
			barColor,
		)
	}

	g.drawHUD()

	rl.EndDrawing()
}

// drawHUD renders the stats panel and pause control.
func (g *Game) drawHUD() {
	panel := rl.Rectangle{X: 10, Y: 10, Width: 180, Height: 110}
	gui.Panel(panel, "Simulation")

	gui.Label(rl.Rectangle{X: 20, Y: 38, Width: 160, Height: 16},
		fmt.Sprintf("Tick: %d", g.tick))
	gui.Label(rl.Rectangle{X: 20, Y: 56, Width: 160, Height: 16},
		fmt.Sprintf("Life forms: %d", len(g.world.LifeForms)))
	gui.Label(rl.Rectangle{X: 20, Y: 74, Width: 160, Height: 16},
		fmt.Sprintf("Food: %d  Speed: %dx", len(g.world.Food), g.stepsPerUpdate))

	label := "Pause"
	if g.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: 20, Y: 92, Width: 80, Height: 20}, label) {
		g.paused = !g.paused
	}
}
