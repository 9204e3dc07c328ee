package game

import (
	"fmt"
	"strings"

	"github.com/punchworks/puncher/internal/core"
)

// HUD occupies the top rows; the world is scaled onto the full screen and
// the HUD overdraws it.
const hudHeight = 2

// Entity glyphs.
const (
	heroChar       = '█'
	enemyChar      = '▓'
	treasureChar   = '◆'
	groundChar     = '▒'
	punchChar      = '*'
	goalChar       = '║'
	fireballChar   = '●'
	bulletChar     = '-'
	laserChar      = '═'
	backgroundChar = '·'
)

// powerGlyph returns the HUD/pickup icon for a power kind.
func powerGlyph(kind PowerKind) rune {
	switch kind {
	case PowerFireball:
		return 'F'
	case PowerGun:
		return 'G'
	case PowerShield:
		return 'S'
	case PowerSword:
		return 'W'
	case PowerBow:
		return 'B'
	case PowerLaserEyes:
		return 'L'
	default:
		return '?'
	}
}

func powerColor(kind PowerKind) core.Color {
	switch kind {
	case PowerFireball:
		return core.ColorOrange
	case PowerGun:
		return core.ColorGray
	case PowerShield:
		return core.ColorBrightBlue
	case PowerSword:
		return core.ColorBrightWhite
	case PowerBow:
		return core.ColorGreen
	case PowerLaserEyes:
		return core.ColorBrightRed
	default:
		return core.ColorDefault
	}
}

// Render draws the current session state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.mode == ModeMenu || g.world == nil {
		g.renderMenu(dst)
		return
	}

	g.renderBackground(dst)
	g.renderEntities(dst)
	if g.debug {
		g.renderDebug(dst)
	}
	g.renderHUD(dst)

	switch g.mode {
	case ModePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case ModeGameOver:
		if g.world.Victory {
			g.renderOverlay(dst, "VICTORY!", fmt.Sprintf("Final score: %d   Enter for menu", g.world.Score))
		} else {
			g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d   Enter for menu", g.world.Score))
		}
	}
}

// toCellX converts a world x coordinate to a screen column, camera-relative.
func (g *Game) toCellX(dst *core.Screen, worldX float64) int {
	return int((worldX - g.world.CameraX) * float64(dst.Width()) / g.cfg.World.ViewW)
}

// toCellY converts a world y coordinate to a screen row.
func (g *Game) toCellY(dst *core.Screen, worldY float64) int {
	return int(worldY * float64(dst.Height()) / g.cfg.World.ViewH)
}

// rectToCells converts a world rectangle to screen cells, guaranteeing at
// least a 1x1 footprint so small entities never vanish.
func (g *Game) rectToCells(dst *core.Screen, r core.Rect) (x, y, w, h int) {
	x = g.toCellX(dst, r.X)
	y = g.toCellY(dst, r.Y)
	w = g.toCellX(dst, r.Right()) - x
	h = g.toCellY(dst, r.Bottom()) - y
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return x, y, w, h
}

// renderBackground draws the parallax dot field and the ground strip.
func (g *Game) renderBackground(dst *core.Screen) {
	groundTop := g.toCellY(dst, g.cfg.World.ViewH-g.cfg.World.GroundHeight)

	// Sparse dots drift at half camera speed for a depth cue.
	shift := int(g.world.CameraX / 2)
	for y := hudHeight + 1; y < groundTop; y += 3 {
		for x := 0; x < dst.Width(); x++ {
			if (x+shift+y*7)%13 == 0 {
				dst.SetCell(x, y, backgroundChar, core.ColorGray)
			}
		}
	}

	for y := groundTop; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), groundChar, core.ColorGreen)
	}
}

// renderEntities draws the goal, pickups, enemies, projectiles and the
// hero, back to front.
func (g *Game) renderEntities(dst *core.Screen) {
	w := g.world

	if w.Goal != nil {
		color := core.ColorMagenta
		if w.Goal.Glow() > 0.5 {
			color = core.ColorBrightMagenta
		}
		x, y, cw, ch := g.rectToCells(dst, w.Goal.Rect)
		dst.FillRect(x, y, cw, ch, goalChar, color)
	}

	for _, t := range w.Treasures {
		x, y, cw, ch := g.rectToCells(dst, t.Rect)
		dst.FillRect(x, y, cw, ch, treasureChar, core.ColorBrightYellow)
	}

	for _, p := range w.PowerUps {
		x, y, cw, ch := g.rectToCells(dst, p.Rect)
		dst.FillRect(x, y, cw, ch, powerGlyph(p.Kind), powerColor(p.Kind))
	}

	for _, e := range w.Enemies {
		color := core.ColorBrightGreen
		if e.HitFlash > 0 {
			color = core.ColorBrightWhite
		}
		x, y, cw, ch := g.rectToCells(dst, e.Rect)
		dst.FillRect(x, y, cw, ch, enemyChar, color)
	}

	for _, p := range w.Projectiles {
		x, y, cw, ch := g.rectToCells(dst, p.Rect)
		dst.FillRect(x, y, cw, ch, projectileGlyph(p), projectileColor(p.Kind))
	}

	g.renderPlayer(dst)
}

func projectileGlyph(p *Projectile) rune {
	switch p.Kind {
	case PowerFireball:
		return fireballChar
	case PowerLaserEyes:
		return laserChar
	case PowerBow:
		if p.Dir > 0 {
			return '→'
		}
		return '←'
	default:
		return bulletChar
	}
}

func projectileColor(kind PowerKind) core.Color {
	switch kind {
	case PowerFireball:
		return core.ColorOrange
	case PowerLaserEyes:
		return core.ColorBrightRed
	case PowerBow:
		return core.ColorGreen
	default:
		return core.ColorYellow
	}
}

// renderPlayer draws the hero, blinking while invulnerable, plus the punch
// effect while the punch window is active.
func (g *Game) renderPlayer(dst *core.Screen) {
	p := g.world.Player

	// Blink in 5-tick on/off phases while invulnerable.
	if !p.Invulnerable || (p.InvulnTimer/5)%2 == 0 {
		x, y, cw, ch := g.rectToCells(dst, p.Rect)
		dst.FillRect(x, y, cw, ch, heroChar, core.ColorSkin)
	}

	if p.Punching {
		x, y, cw, ch := g.rectToCells(dst, p.PunchRect)
		dst.FillRect(x, y, cw, ch, punchChar, core.ColorBrightYellow)
	}
}

// renderDebug outlines the active hit and pickup areas.
func (g *Game) renderDebug(dst *core.Screen) {
	w := g.world

	outline := func(r core.Rect, c core.Color) {
		x, y, cw, ch := g.rectToCells(dst, r)
		dst.DrawBoxOutline(x, y, cw, ch, c)
	}

	if w.Player.Punching {
		outline(w.Player.PunchRect.Inflate(g.cfg.Combat.PunchMargin), core.ColorBrightRed)
	}
	for _, t := range w.Treasures {
		outline(t.Rect.Inflate(g.cfg.Combat.TreasureMargin), core.ColorYellow)
	}
	for _, p := range w.PowerUps {
		outline(p.Rect.Inflate(g.cfg.Combat.PowerUpMargin), core.ColorCyan)
	}
	for _, e := range w.Enemies {
		outline(e.Rect, core.ColorRed)
	}
	outline(w.Player.Rect, core.ColorWhite)
}

// renderHUD draws the two status rows: health, score and level, then the
// power list with hotkeys and ammo.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	p := w.Player

	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawHLine(0, 1, dst.Width(), ' ', core.ColorDefault)

	level := g.reportedLevel()

	bar := healthBar(p.Health, p.MaxHealth, 10)
	barColor := core.ColorBrightGreen
	if p.Health*3 < p.MaxHealth {
		barColor = core.ColorBrightRed
	}
	dst.DrawTextColor(1, 0, bar, barColor)
	status := fmt.Sprintf(" HP %d/%d  Score: %d  Level: %d/%d",
		p.Health, p.MaxHealth, w.Score, level, g.cfg.World.FinalLevel)
	dst.DrawText(1+len([]rune(bar)), 0, status)
	if g.debug {
		dst.DrawTextColor(dst.Width()-8, 0, "[debug]", core.ColorGray)
	}

	x := 1
	for _, slot := range g.PowerSlots() {
		if !slot.Unlocked {
			continue
		}
		label := fmt.Sprintf("%d:%s", slot.Hotkey, slot.Kind)
		if slot.Ammo >= 0 {
			label += fmt.Sprintf(" x%d", slot.Ammo)
		}
		dst.DrawTextColor(x, 1, label, powerColor(slot.Kind))
		x += len(label) + 2
	}
}

// healthBar renders a fixed-width block bar like [████------].
func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		maxHealth = 1
	}
	if health < 0 {
		health = 0
	}
	filled := health * width / maxHealth
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteRune('█')
		} else {
			b.WriteRune('-')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// renderMenu draws the title screen with controls.
func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCenteredColor(h/2-5, "P U N C H E R !", core.ColorBrightYellow)
	dst.DrawTextCentered(h/2-3, "Punch and shoot your way through 5 levels")
	dst.DrawTextCentered(h/2-1, "← → move   ↑ jump   ↓ sneak   Space punch")
	dst.DrawTextCentered(h/2, "1-6 use powers   P pause   ` debug")
	dst.DrawTextCentered(h/2+1, "Grab gems for points and crates for new powers")
	dst.DrawTextCenteredColor(h/2+3, "Press Enter to start", core.ColorBrightGreen)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBoxOutline(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
