package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spellcatch/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "[C]", core.ColorBrightYellow)
	s.DrawText(4, 0, "ok")
	s.SetColored(0, 1, '▶', core.ColorBrightCyan)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 10 {
			t.Errorf("line %d: got width %d, expected 10", i, w)
		}
	}
	if !strings.Contains(out, "[C]") || !strings.Contains(out, "▶") {
		t.Errorf("rendered output lost text: %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	got := styleFor(core.Color(999)).Render("x")
	if got != "x" {
		t.Errorf("got %q, expected the unstyled text", got)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("got %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("got %q, expected text unchanged", got)
	}
}
