package bots

import "whist/internal/engine"

// filter narrows a query to one suit, away from one suit, or both.
// A nil field places no restriction.
type filter struct {
	suit    *engine.Suit
	exclude *engine.Suit
}

func (f filter) match(c engine.Card) bool {
	if f.suit != nil && c.Suit != *f.suit {
		return false
	}
	if f.exclude != nil && c.Suit == *f.exclude {
		return false
	}
	return true
}

func onlySuit(s engine.Suit) filter { return filter{suit: &s} }

func otherThan(s engine.Suit) filter { return filter{exclude: &s} }

// pickHighest returns the matching card of greatest rank. Equal ranks (only
// possible across suits) go to the card that is greater by engine.Compare.
func pickHighest(cards []engine.Card, f filter) (engine.Card, bool) {
	var best engine.Card
	found := false
	for _, c := range cards {
		if !f.match(c) {
			continue
		}
		if !found || c.Rank > best.Rank || (c.Rank == best.Rank && engine.Compare(c, best) > 0) {
			best, found = c, true
		}
	}
	return best, found
}

// pickLowest returns the matching card that is least by engine.Compare.
func pickLowest(cards []engine.Card, f filter) (engine.Card, bool) {
	var low engine.Card
	found := false
	for _, c := range cards {
		if !f.match(c) {
			continue
		}
		if !found || engine.Compare(c, low) < 0 {
			low, found = c, true
		}
	}
	return low, found
}

func containsSuit(cards []engine.Card, suit engine.Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}

func containsOtherSuit(cards []engine.Card, suit engine.Suit) bool {
	for _, c := range cards {
		if c.Suit != suit {
			return true
		}
	}
	return false
}

func highestOfSuit(cards []engine.Card, suit engine.Suit) (engine.Card, bool) {
	return pickHighest(cards, onlySuit(suit))
}

func highestOverall(cards []engine.Card) (engine.Card, bool) {
	return pickHighest(cards, filter{})
}

func lowestOverall(cards []engine.Card) (engine.Card, bool) {
	return pickLowest(cards, filter{})
}

func lowestOfSuit(cards []engine.Card, suit engine.Suit) (engine.Card, bool) {
	return pickLowest(cards, onlySuit(suit))
}

func lowestExcludingSuit(cards []engine.Card, suit engine.Suit) (engine.Card, bool) {
	return pickLowest(cards, otherThan(suit))
}

// nextCardAbove looks for the cheapest card that still beats threshold.
//
// The first card of suit seeds the candidate without being checked against
// threshold; later cards replace it only when they beat threshold and rank
// below the candidate. If that finds nothing, the trump suit is scanned the
// same way except that any later trump beating threshold replaces the
// candidate. The first scan is skipped when threshold is itself a trump.
// A nil threshold is beaten by every card.
func nextCardAbove(cards []engine.Card, threshold *engine.Card, suit engine.Suit, trumps *engine.Suit) (engine.Card, bool) {
	above := func(c engine.Card) bool {
		return threshold == nil || c.Rank > threshold.Rank
	}

	var next engine.Card
	found := false

	if threshold == nil || trumps == nil || threshold.Suit != *trumps {
		for _, c := range cards {
			if c.Suit != suit {
				continue
			}
			if !found {
				next, found = c, true
				continue
			}
			if above(c) && c.Rank < next.Rank {
				next = c
			}
		}
	}

	if !found && trumps != nil {
		for _, c := range cards {
			if c.Suit != *trumps {
				continue
			}
			if !found {
				next, found = c, true
				continue
			}
			if above(c) {
				next = c
			}
		}
	}

	return next, found
}

// beatsReference reports whether candidate is greater than ref by
// engine.Compare. A missing reference is always beaten.
func beatsReference(candidate engine.Card, ref engine.Card, hasRef bool) bool {
	return !hasRef || engine.Compare(candidate, ref) > 0
}
