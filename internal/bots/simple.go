package bots

import (
	"errors"
	"fmt"

	"whist/internal/engine"
)

var (
	ErrEmptyHand   = errors.New("hand is empty")
	ErrTrickFull   = errors.New("trick already has every other player's card")
	ErrLeadMissing = errors.New("cards played but leader has not played")
	ErrNoCandidate = errors.New("no card selected")
)

// SimpleBot plays the highest card that can still win the trick and
// otherwise discards its lowest card. As the last player in a trick it plays
// the cheapest card that wins. It holds no state.
type SimpleBot struct{}

func NewSimple() SimpleBot { return SimpleBot{} }

func (SimpleBot) ChooseCard(hand engine.Hand, trick engine.Trick) (engine.Card, error) {
	if err := checkSnapshot(hand, trick); err != nil {
		return engine.Card{}, err
	}

	cards := hand.Cards()
	played := trick.Cards()
	trumps := trick.Trump
	lastCard := len(played) == engine.NumPlayers-1

	leadSuit, led := trick.LeadSuit()
	if !led {
		if trumps != nil && containsSuit(cards, *trumps) {
			return selected(highestOfSuit(cards, *trumps))
		}
		return selected(highestOverall(cards))
	}

	if trumps != nil {
		if c, ok := playTrumps(cards, played, leadSuit, *trumps, lastCard); ok {
			return c, nil
		}
	}

	if c, ok := followLead(cards, played, leadSuit, trumps, lastCard); ok {
		return c, nil
	}

	if trumps != nil && containsOtherSuit(cards, *trumps) {
		return selected(lowestExcludingSuit(cards, *trumps))
	}
	return selected(lowestOverall(cards))
}

func checkSnapshot(hand engine.Hand, trick engine.Trick) error {
	if hand.Len() == 0 {
		return ErrEmptyHand
	}
	if trick.Len() >= engine.NumPlayers {
		return fmt.Errorf("%w: %d cards played", ErrTrickFull, trick.Len())
	}
	if _, led := trick.LeadSuit(); !led && trick.Len() > 0 {
		return fmt.Errorf("%w: leader %d", ErrLeadMissing, trick.Leader)
	}
	return nil
}

// playTrumps handles a trick in which trumps are in play: either a trump has
// already been played or the lead suit's ace is out. It reports false when the
// decision is left to followLead.
func playTrumps(cards, played []engine.Card, leadSuit, trumps engine.Suit, lastCard bool) (engine.Card, bool) {
	leadHigh, _ := highestOfSuit(played, leadSuit)
	trumpPlayed := containsSuit(played, trumps)
	if leadHigh.Rank != engine.RankAce && !trumpPlayed {
		return engine.Card{}, false
	}

	if containsSuit(cards, trumps) {
		highestPlayed, hasPlayed := highestOfSuit(played, trumps)
		var candidate engine.Card
		var ok bool
		if lastCard {
			var threshold *engine.Card
			if hasPlayed {
				threshold = &highestPlayed
			}
			candidate, ok = nextCardAbove(cards, threshold, trumps, &trumps)
		} else {
			candidate, ok = highestOfSuit(cards, trumps)
		}
		if ok && beatsReference(candidate, highestPlayed, hasPlayed) {
			return candidate, true
		}
		return engine.Card{}, false
	}

	if trumpPlayed {
		if containsOtherSuit(cards, trumps) {
			return lowestExcludingSuit(cards, trumps)
		}
		return lowestOverall(cards)
	}
	return engine.Card{}, false
}

// followLead plays within the lead suit when possible, and otherwise tries to
// take the trick with a trump. It reports false when only a discard remains.
func followLead(cards, played []engine.Card, leadSuit engine.Suit, trumps *engine.Suit, lastCard bool) (engine.Card, bool) {
	if containsSuit(cards, leadSuit) {
		highestPlayed, _ := highestOfSuit(played, leadSuit)
		var candidate engine.Card
		var ok bool
		if lastCard {
			candidate, ok = nextCardAbove(cards, &highestPlayed, leadSuit, trumps)
		} else {
			candidate, ok = highestOfSuit(cards, leadSuit)
		}
		if ok && engine.Compare(candidate, highestPlayed) > 0 {
			return candidate, true
		}
		return lowestOfSuit(cards, leadSuit)
	}

	var highestPlayed engine.Card
	if trumps != nil && containsSuit(played, *trumps) {
		highestPlayed, _ = highestOfSuit(played, *trumps)
	} else {
		highestPlayed, _ = highestOfSuit(played, leadSuit)
	}

	if lastCard {
		return nextCardAbove(cards, &highestPlayed, leadSuit, trumps)
	}
	if trumps != nil {
		return highestOfSuit(cards, *trumps)
	}
	return engine.Card{}, false
}

func selected(c engine.Card, ok bool) (engine.Card, error) {
	if !ok {
		return engine.Card{}, ErrNoCandidate
	}
	return c, nil
}
