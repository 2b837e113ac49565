// Package autopilot plays the spelling engine without a human: a Pilot
// steers the player and a Driver deals words and records the rounds.
// Both are engine listeners, so they run wherever the engine's scheduler
// runs its callbacks.
package autopilot

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/spellcatch/internal/spelling"
)

// Controller is the part of the engine a pilot steers.
type Controller interface {
	Lane() int
	MoveUp()
	MoveDown()
}

// Pilot aims at the correct token of each wave with probability accuracy
// and at a random wrong token otherwise. It moves at most one lane per
// token update.
type Pilot struct {
	spelling.NopListener

	ctrl     Controller
	accuracy float64
	rng      *rand.Rand

	wave   string // Letters of the wave the plan was made for
	target int
	misses int // Waves aimed at a wrong token
}

// NewPilot creates a pilot. accuracy is clamped to [0, 1].
func NewPilot(ctrl Controller, accuracy float64, seed int64) *Pilot {
	return &Pilot{
		ctrl:     ctrl,
		accuracy: min(max(accuracy, 0), 1),
		rng:      rand.New(rand.NewSource(seed)),
		target:   -1,
	}
}

// TokensUpdated plans a target for every new wave and steps towards it.
func (p *Pilot) TokensUpdated(tokens []spelling.Token) {
	if key := waveKey(tokens); key != p.wave {
		p.wave = key
		p.plan(tokens)
	}
	if p.target < 0 {
		return
	}

	switch lane := p.ctrl.Lane(); {
	case p.target < lane:
		p.ctrl.MoveUp()
	case p.target > lane:
		p.ctrl.MoveDown()
	}
}

// Misses returns how many waves the pilot aimed at a wrong letter.
func (p *Pilot) Misses() int {
	return p.misses
}

func (p *Pilot) plan(tokens []spelling.Token) {
	p.target = -1

	var right, wrong []int
	for _, tok := range tokens {
		if !tok.Active {
			continue
		}
		if tok.Correct {
			right = append(right, tok.Lane)
		} else {
			wrong = append(wrong, tok.Lane)
		}
	}

	switch {
	case len(right) > 0 && (len(wrong) == 0 || p.rng.Float64() < p.accuracy):
		p.target = right[0]
	case len(wrong) > 0:
		p.target = wrong[p.rng.Intn(len(wrong))]
		p.misses++
	}
}

// waveKey identifies a wave by its letters in spawn order. Caught tokens
// stay in the slice, so the key is stable for the life of a wave.
func waveKey(tokens []spelling.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteRune(tok.Letter)
	}
	return b.String()
}
