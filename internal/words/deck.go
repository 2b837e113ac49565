package words

import "math/rand"

// Mode selects how a Deck deals words.
type Mode int

const (
	// ModeCampaign deals the words in lesson order, once each.
	ModeCampaign Mode = iota
	// ModeEndless deals random words forever, never the same word twice in a row.
	ModeEndless
)

func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// Deck deals words from a list.
type Deck struct {
	words []string
	mode  Mode
	rng   *rand.Rand
	next  int
	last  int
	dealt int
}

// NewDeck creates a deck over words. The seed only matters in endless mode.
func NewDeck(words []string, mode Mode, seed int64) *Deck {
	return &Deck{
		words: append([]string(nil), words...),
		mode:  mode,
		rng:   rand.New(rand.NewSource(seed)),
		last:  -1,
	}
}

// Next returns the next word. ok is false once a campaign deck is exhausted
// or when the deck has no words.
func (d *Deck) Next() (word string, ok bool) {
	if len(d.words) == 0 {
		return "", false
	}

	var i int
	switch d.mode {
	case ModeEndless:
		i = d.rng.Intn(len(d.words))
		if len(d.words) > 1 && i == d.last {
			// Shift to a neighbour instead of redrawing to keep the draw count fixed.
			i = (i + 1 + d.rng.Intn(len(d.words)-1)) % len(d.words)
		}
	default:
		if d.next >= len(d.words) {
			return "", false
		}
		i = d.next
		d.next++
	}

	d.last = i
	d.dealt++
	return d.words[i], true
}

// Remaining returns how many words a campaign deck has left, or -1 for endless.
func (d *Deck) Remaining() int {
	if d.mode == ModeEndless {
		return -1
	}
	return len(d.words) - d.next
}

// Dealt returns how many words have been dealt.
func (d *Deck) Dealt() int { return d.dealt }

// Len returns the number of distinct words in the deck.
func (d *Deck) Len() int { return len(d.words) }

// Mode returns the deck's dealing mode.
func (d *Deck) Mode() Mode { return d.mode }

// Rewind starts a campaign deck over.
func (d *Deck) Rewind() {
	d.next = 0
	d.dealt = 0
	d.last = -1
}
