// Package tui runs games in the terminal with Bubble Tea.
// It owns the frame loop, key mapping, persistence hooks and the menus.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// lastLoopID hands out frame loop ids.
var lastLoopID atomic.Int64

// TickMsg is sent once per platform frame. LoopID tells apart the loops of
// models that replaced each other in one program, so a stale loop dies out
// instead of doubling the frame rate.
type TickMsg struct {
	Time   time.Time
	LoopID int64
}

func nextLoopID() int64 {
	return lastLoopID.Add(1)
}

// frameInterval returns the duration of one frame at tickRate frames per second.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame of loop id.
func tickCmd(tickRate int, id int64) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, LoopID: id}
	})
}
