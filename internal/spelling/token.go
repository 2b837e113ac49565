package spelling

import "unicode"

// Token is a single letter moving along a lane.
type Token struct {
	Letter  rune    // Uppercase letter
	Lane    int     // Lane index, fixed for the token's lifetime
	X       float64 // Horizontal position, decreases every tick
	Correct bool    // Whether this is the letter the cursor is waiting for
	Active  bool    // Inactive tokens are skipped by collision checks
}

// NewToken creates an active token with the letter normalized to uppercase.
func NewToken(letter rune, lane int, x float64, correct bool) Token {
	return Token{
		Letter:  unicode.ToUpper(letter),
		Lane:    lane,
		X:       x,
		Correct: correct,
		Active:  true,
	}
}

// copyTokens returns a copy that shares no memory with src.
func copyTokens(src []Token) []Token {
	out := make([]Token, len(src))
	copy(out, src)
	return out
}
