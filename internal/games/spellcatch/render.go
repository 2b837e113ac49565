package spellcatch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/spellcatch/internal/core"
	"github.com/vovakirdan/spellcatch/internal/spelling"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst)
	g.renderFooter(dst)

	switch {
	case g.completed:
		g.renderOverlay(dst, "Lesson complete!", fmt.Sprintf("Score: %d  -  R to play again", g.engine.Score()))
	case g.over:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("The word was %q  -  R to restart", g.engine.Word()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hearts := strings.Repeat("♥", g.engine.Lives())
	round := fmt.Sprintf("Word %d", g.deck.Dealt())
	if g.mode == ModeCampaign {
		round = fmt.Sprintf("Word %d/%d", g.deck.Dealt(), g.deck.Len())
	}
	hud := fmt.Sprintf(" %s - %s  %s  Score: %d", g.Title(), g.lesson.Title, round, g.engine.Score())
	dst.DrawText(0, 0, hud)

	livesX := dst.Width() - utf8.RuneCountInString(hearts) - 1
	dst.DrawTextColored(livesX, 0, hearts, core.ColorRed)
	if g.muted {
		dst.DrawTextColored(livesX-8, 0, "[muted]", core.ColorGray)
	}

	dst.DrawText(1, 1, "Spell: ")
	dst.DrawTextColored(8, 1, g.engine.Progress(), core.ColorBrightWhite)

	switch {
	case g.flashLeft > 0:
		dst.DrawTextColored(30, 1, g.flashText, g.flashColor)
	case g.banner.Text() != "":
		dst.DrawTextColored(30, 1, g.banner.Text(), core.ColorBrightCyan)
	}

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// laneRow returns the row tokens of lane are drawn on.
func (g *Game) laneRow(lane int) int {
	return hudHeight + lane*g.laneHeight + g.laneHeight/2
}

// column maps a position to a screen column.
func (g *Game) column(x float64) int {
	return fieldLeft + int(x/g.cfg.Gameplay.UnitsPerCell)
}

func (g *Game) renderField(dst *core.Screen) {
	lanes := g.cfg.Engine.Lanes
	tuning := g.engine.Tuning()
	zoneLo := g.column(tuning.CollisionX - tuning.CollisionHalfWidth)
	zoneHi := g.column(tuning.CollisionX + tuning.CollisionHalfWidth)

	// Lane dividers
	if g.laneHeight > 1 {
		for lane := 1; lane < lanes; lane++ {
			y := hudHeight + lane*g.laneHeight
			for x := fieldLeft; x < dst.Width(); x += 2 {
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	// Catch zone
	for lane := range lanes {
		y := g.laneRow(lane)
		c := core.ColorGray
		if lane == g.engine.Lane() {
			c = core.ColorYellow
		}
		dst.SetColored(zoneLo, y, '┆', c)
		dst.SetColored(zoneHi, y, '┆', c)
	}

	// Player
	dst.SetColored(0, g.laneRow(g.engine.Lane()), '▶', core.ColorBrightYellow)

	for _, tok := range g.engine.Tokens() {
		g.renderToken(dst, tok)
	}
}

func (g *Game) renderToken(dst *core.Screen, tok spelling.Token) {
	x := g.column(tok.X)
	y := g.laneRow(tok.Lane)
	c := core.ColorBrightCyan
	if !tok.Active {
		c = core.ColorGray
	}
	dst.SetColored(x-1, y, '[', c)
	dst.SetColored(x, y, tok.Letter, c)
	dst.SetColored(x+1, y, ']', c)
}

func (g *Game) renderFooter(dst *core.Screen) {
	help := "↑/↓ move  P pause  M mute  Q quit"
	if g.clearing {
		help = "Get ready for the next word..."
	}
	dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	inner := box.Inset(1)
	for y := inner.Y; y < inner.Bottom(); y++ {
		dst.DrawHLine(inner.X, y, inner.W, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorWhite)
}
