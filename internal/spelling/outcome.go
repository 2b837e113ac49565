package spelling

// resolve applies a collision with tok to the round.
func (e *Engine) resolve(tok Token) {
	if tok.Correct {
		e.resolveCorrect(tok)
		return
	}
	e.resolveWrong(tok)
}

func (e *Engine) resolveCorrect(tok Token) {
	s := e.session
	s.cursor++
	s.score += e.tuning.CorrectBonus
	e.listener.CorrectLetter(tok.Letter)
	s.clearTokens()

	if s.WordComplete() {
		s.status = StatusWin
		e.Stop()
		e.listener.WordComplete(s.word.Text())
		return
	}
	e.scheduleWave(e.tuning.WaveDelay)
}

func (e *Engine) resolveWrong(tok Token) {
	s := e.session
	expected := s.TargetLetter()
	s.loseLife()
	e.listener.WrongLetter(tok.Letter, expected)
	e.listener.LivesChanged(s.lives)
	s.clearTokens()

	if s.lives == 0 {
		s.status = StatusLose
		e.Stop()
		e.listener.GameOver()
		return
	}
	e.scheduleWave(e.tuning.WaveDelay + e.tuning.MistakePenalty)
}
