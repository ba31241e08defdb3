package asteroids

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// Minimum terminal size for a playable field.
const (
	minScreenW = 40
	minScreenH = 16
)

// Glyphs used to rasterize each kind of outline.
var kindGlyphs = map[sim.Kind]rune{
	sim.KindShip:        '█',
	sim.KindAsteroid:    '▒',
	sim.KindAlien:       '≡',
	sim.KindBullet:      '•',
	sim.KindAlienBullet: '•',
	sim.KindMissile:     '■',
	sim.KindDebris:      '·',
}

func (g *Game) kindColor(k sim.Kind) core.Color {
	switch k {
	case sim.KindShip:
		return g.palette.Ship
	case sim.KindAsteroid:
		return g.palette.Asteroid
	case sim.KindAlien:
		return g.palette.Alien
	case sim.KindBullet:
		return g.palette.Bullet
	case sim.KindAlienBullet:
		return g.palette.AlienBullet
	case sim.KindMissile:
		return g.palette.Missile
	default:
		return g.palette.Debris
	}
}

// renderScene draws the field, the HUD and any overlay.
func renderScene(dst *core.Screen, g *Game) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	// Row 0 is the HUD; the field fills the rest.
	proj := core.Fit(g.cfg.World.Size, dst.Width(), dst.Height()-1)
	proj.OffsetY++

	frame := g.world.Clock.Ticks()
	for e := range g.world.Arena.All() {
		dst.DrawShape(e.VisualOutline(frame), proj, kindGlyphs[e.Kind()], g.kindColor(e.Kind()))
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and level on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.session.Phase == PhaseSplash {
		return
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("%d", g.session.Score), g.palette.HUD)
	dst.DrawTextCenteredColor(0, strings.Repeat("▲ ", g.session.Lives), g.palette.Ship)
	level := fmt.Sprintf("Level %d", g.session.Level)
	dst.DrawTextColor(dst.Width()-len(level)-1, 0, level, g.palette.HUD)
}

// renderOverlay draws the legend and state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case g.session.Phase == PhaseSplash:
		g.drawCenteredBox(dst, LegendTitle, LegendStart)
		dst.DrawTextCentered(dst.Height()-1, "←/→ turn  ↑ thrust  space fire  p pause  q quit")
	case g.session.Phase == PhaseGameOver:
		g.drawCenteredBox(dst, LegendGameOver, fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score))
	case g.paused:
		g.drawCenteredBox(dst, LegendPaused, "Press P to resume")
	case g.legend != "":
		dst.DrawTextCenteredColor(mid, g.legend, g.palette.HUD)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	r := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawBox(r, g.palette.HUD)
	dst.DrawTextColor(r.X+(boxW-len([]rune(title)))/2, r.Y+1, title, g.palette.HUD)
	dst.DrawText(r.X+(boxW-len([]rune(subtitle)))/2, r.Y+3, subtitle)
}
