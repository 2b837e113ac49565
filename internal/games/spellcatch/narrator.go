package spellcatch

// Narrator announces the word the player has to spell.
type Narrator interface {
	Announce(word string)
}

// bannerFrames is how long the banner stays up, about two seconds at 60 FPS.
const bannerFrames = 120

// Banner is the default narrator: it shows the word in the HUD for a short
// while, then hides it so the player spells from memory.
type Banner struct {
	word   string
	frames int
}

// Announce shows word in the banner.
func (b *Banner) Announce(word string) {
	b.word = word
	b.frames = bannerFrames
}

// Tick counts the banner down by one frame.
func (b *Banner) Tick() {
	if b.frames > 0 {
		b.frames--
	}
}

// Text returns the banner text, or "" once it has expired.
func (b *Banner) Text() string {
	if b.frames == 0 {
		return ""
	}
	return "♪ " + b.word
}

// Hide clears the banner.
func (b *Banner) Hide() {
	b.frames = 0
}
