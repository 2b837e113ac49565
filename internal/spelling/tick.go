package spelling

// tick is the periodic callback. It reschedules itself while the round is
// being played, so a paused engine never replays missed ticks. A listener
// that starts or stops the loop during the step takes over the schedule.
func (e *Engine) tick() {
	e.tickTimer = nil
	if e.session.status != StatusPlaying {
		return
	}
	epoch := e.tickEpoch
	e.step()
	if e.session.status == StatusPlaying && e.tickEpoch == epoch {
		e.scheduleTick()
	}
}

// step advances the field by one tick: move, detect at most one collision,
// drop off-screen tokens, resolve the collision and keep waves coming.
func (e *Engine) step() {
	s := e.session

	var caught Token
	collided := false

	kept := s.tokens[:0]
	for _, tok := range s.tokens {
		if tok.Active {
			tok.X -= e.speed
			// Only the first qualifying token is accepted. Waves are spawned in
			// lane order, so this is also the lowest lane on a tie.
			if !collided && tok.Lane == s.lane && e.inCollisionZone(tok.X) {
				tok.Active = false
				caught = tok
				collided = true
			}
		}
		if tok.X < e.tuning.OffscreenX {
			continue
		}
		kept = append(kept, tok)
	}
	s.tokens = kept

	if collided {
		// Clears the field and schedules the next wave unless the round ended.
		e.resolve(caught)
	}

	// A listener may have restarted the round during resolve, so look at the
	// field as it is now.
	if s.status == StatusPlaying && e.waveTimer == nil && !anyActive(s.tokens) {
		e.scheduleWave(e.tuning.WaveDelay)
	}

	e.listener.TokensUpdated(s.Tokens())
}

func anyActive(tokens []Token) bool {
	for _, tok := range tokens {
		if tok.Active {
			return true
		}
	}
	return false
}

// inCollisionZone reports whether x lies in the band around the collision line.
func (e *Engine) inCollisionZone(x float64) bool {
	lo := e.tuning.CollisionX - e.tuning.CollisionHalfWidth
	hi := e.tuning.CollisionX + e.tuning.CollisionHalfWidth
	return x >= lo && x <= hi
}
