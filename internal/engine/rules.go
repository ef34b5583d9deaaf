package engine

// TrickWinner returns the player whose card takes the trick so far: the
// highest trump if any trump was played, otherwise the highest card of the
// lead suit.
func TrickWinner(t Trick) (int, bool) {
	if len(t.Plays) == 0 {
		return -1, false
	}
	leadSuit, ok := t.LeadSuit()
	if !ok {
		return -1, false
	}
	bestIdx := -1
	for i, p := range t.Plays {
		if bestIdx < 0 {
			if p.Card.Suit == leadSuit || (t.Trump != nil && p.Card.Suit == *t.Trump) {
				bestIdx = i
			}
			continue
		}
		if beats(p.Card, t.Plays[bestIdx].Card, leadSuit, t.Trump) {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return -1, false
	}
	return t.Plays[bestIdx].Player, true
}

func beats(c, best Card, leadSuit Suit, trump *Suit) bool {
	if trump != nil {
		if c.Suit == *trump && best.Suit != *trump {
			return true
		}
		if c.Suit != *trump && best.Suit == *trump {
			return false
		}
	}
	if c.Suit == best.Suit {
		return c.Rank > best.Rank
	}
	return best.Suit != leadSuit && c.Suit == leadSuit
}

// LegalPlays restricts the hand to the lead suit when the hand can follow.
func LegalPlays(h Hand, t Trick) []Card {
	lead, ok := t.LeadSuit()
	if !ok {
		return h.Cards()
	}
	follow := filterBySuit(h.cards, lead)
	if len(follow) > 0 {
		return follow
	}
	return h.Cards()
}

func filterBySuit(cards []Card, suit Suit) []Card {
	out := []Card{}
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}
