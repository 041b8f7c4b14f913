// Package deck holds the flashcard deck: an ordered, photo-only subset of
// group participants with a cursor and a reveal flag.
package deck

import "namedeck/internal/dto"

type Deck struct {
	cards    []dto.Participant
	index    int
	revealed bool
}

// Build filters out participants without a profile photo, keeping relative
// order. The quiz is photo-based, so a card without a photo has no front.
func Build(participants []dto.Participant) *Deck {
	cards := make([]dto.Participant, 0, len(participants))
	for _, p := range participants {
		if p.HasPhoto() {
			cards = append(cards, p)
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Empty() bool { return len(d.cards) == 0 }

func (d *Deck) Index() int { return d.index }

func (d *Deck) Revealed() bool { return d.revealed }

// Current returns the card under the cursor; ok is false for an empty deck.
func (d *Deck) Current() (dto.Participant, bool) {
	if d.Empty() {
		return dto.Participant{}, false
	}
	return d.cards[d.index], true
}

// Next advances circularly and hides the answer again.
func (d *Deck) Next() {
	if d.Empty() {
		return
	}
	d.index = (d.index + 1) % len(d.cards)
	d.revealed = false
}

// Previous retreats circularly and hides the answer again.
func (d *Deck) Previous() {
	if d.Empty() {
		return
	}
	d.index = (d.index - 1 + len(d.cards)) % len(d.cards)
	d.revealed = false
}

func (d *Deck) Reveal() {
	d.revealed = true
}

// Reset returns to the first card, unrevealed, without changing contents.
func (d *Deck) Reset() {
	d.index = 0
	d.revealed = false
}
