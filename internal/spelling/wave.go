package spelling

// generateWave fills every lane with one token, exactly one of them carrying
// the letter at the cursor. It is a no-op unless a word is set, the round is
// being played and letters remain.
func (e *Engine) generateWave() {
	s := e.session
	if s.word == nil || s.status != StatusPlaying || s.WordComplete() {
		return
	}

	s.clearTokens()

	target := s.TargetLetter()
	lanes := e.tuning.Lanes
	correctLane := e.rng.Intn(lanes)
	distractors := e.distractors(target, lanes-1)
	x := e.spawnX()

	next := 0
	for lane := range lanes {
		if lane == correctLane {
			s.tokens = append(s.tokens, NewToken(target, lane, x, true))
			continue
		}
		s.tokens = append(s.tokens, NewToken(distractors[next], lane, x, false))
		next++
	}

	e.listener.TokensUpdated(s.Tokens())
}

// distractors draws n distinct uppercase letters, none equal to target,
// in shuffled order.
func (e *Engine) distractors(target rune, n int) []rune {
	seen := make(map[rune]bool, n+1)
	seen[target] = true

	out := make([]rune, 0, n)
	for len(out) < n {
		r := 'A' + rune(e.rng.Intn(alphabetSize))
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}

	e.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// spawnX is one token length past the right edge of the viewport.
func (e *Engine) spawnX() float64 {
	if e.viewportWidth <= 0 {
		return e.tuning.DefaultSpawnX
	}
	return e.viewportWidth + e.tuning.TokenSize
}
