package spelling

// Listener observes the engine. Calls are made synchronously from inside the
// engine call that caused them (a tick, a wave spawn or a control call).
type Listener interface {
	// TokensUpdated receives a copy of the tokens on the field.
	TokensUpdated(tokens []Token)
	CorrectLetter(letter rune)
	WrongLetter(actual, expected rune)
	WordComplete(word string)
	GameOver()
	LivesChanged(lives int)
}

// NopListener ignores every event. Embed it to implement only some methods.
type NopListener struct{}

func (NopListener) TokensUpdated([]Token)  {}
func (NopListener) CorrectLetter(rune)     {}
func (NopListener) WrongLetter(rune, rune) {}
func (NopListener) WordComplete(string)    {}
func (NopListener) GameOver()              {}
func (NopListener) LivesChanged(int)       {}

// Listeners fans events out to several listeners in order.
// Each listener gets its own token copy.
type Listeners []Listener

func (ls Listeners) TokensUpdated(tokens []Token) {
	for _, l := range ls {
		l.TokensUpdated(copyTokens(tokens))
	}
}

func (ls Listeners) CorrectLetter(letter rune) {
	for _, l := range ls {
		l.CorrectLetter(letter)
	}
}

func (ls Listeners) WrongLetter(actual, expected rune) {
	for _, l := range ls {
		l.WrongLetter(actual, expected)
	}
}

func (ls Listeners) WordComplete(word string) {
	for _, l := range ls {
		l.WordComplete(word)
	}
}

func (ls Listeners) GameOver() {
	for _, l := range ls {
		l.GameOver()
	}
}

func (ls Listeners) LivesChanged(lives int) {
	for _, l := range ls {
		l.LivesChanged(lives)
	}
}
