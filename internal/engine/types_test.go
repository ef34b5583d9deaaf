package engine

import (
	"errors"
	"sort"
	"testing"
)

func TestCompareIsTotalOrder(t *testing.T) {
	deck := BuildDeck()
	for i, a := range deck {
		for j, b := range deck {
			got := Compare(a, b)
			switch {
			case i < j && got != -1, i > j && got != 1, i == j && got != 0:
				t.Fatalf("Compare(%v, %v) = %d", a, b, got)
			}
			if (got == 0) != (a == b) {
				t.Fatalf("Compare inconsistent with equality for %v, %v", a, b)
			}
		}
	}
}

func TestCompareSuitBeforeRank(t *testing.T) {
	if !(Card{Suit: SuitHearts, Rank: RankAce}).Less(Card{Suit: SuitClubs, Rank: RankTwo}) {
		t.Fatalf("every heart should sort before every club")
	}
	if !(Card{Suit: SuitSpades, Rank: RankTen}).Less(Card{Suit: SuitSpades, Rank: RankJack}) {
		t.Fatalf("ten should sort before jack")
	}
}

func TestParseCard(t *testing.T) {
	for _, c := range BuildDeck() {
		got, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("parse %q: %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("parse %q: got %v", c.String(), got)
		}
	}
	for _, bad := range []string{"", "A", "1H", "AX", "11S"} {
		if _, err := ParseCard(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestCardName(t *testing.T) {
	if got := (Card{Suit: SuitSpades, Rank: RankAce}).Name(); got != "Ace of Spades" {
		t.Fatalf("got %q", got)
	}
	if got := (Card{Suit: SuitHearts, Rank: RankTen}).Name(); got != "10 of Hearts" {
		t.Fatalf("got %q", got)
	}
}

func TestNewHandSortsAndRejectsDuplicates(t *testing.T) {
	h, err := NewHand(
		Card{Suit: SuitSpades, Rank: RankTwo},
		Card{Suit: SuitHearts, Rank: RankKing},
		Card{Suit: SuitHearts, Rank: RankThree},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cs := h.Cards()
	if !sort.SliceIsSorted(cs, func(i, j int) bool { return cs[i].Less(cs[j]) }) {
		t.Fatalf("hand not sorted: %v", h)
	}
	if h.String() != "[3H KH 2S]" {
		t.Fatalf("got %s", h)
	}

	_, err = NewHand(Card{Suit: SuitClubs, Rank: RankFour}, Card{Suit: SuitClubs, Rank: RankFour})
	if !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if _, err := NewHand(Card{Suit: Suit(9), Rank: RankFour}); err == nil {
		t.Fatalf("expected invalid card error")
	}
}

func TestHandWithout(t *testing.T) {
	ah := Card{Suit: SuitHearts, Rank: RankAce}
	h, _ := NewHand(ah, Card{Suit: SuitClubs, Rank: RankTwo})
	rest, ok := h.Without(ah)
	if !ok || rest.Len() != 1 || rest.Contains(ah) {
		t.Fatalf("remove failed: %v", rest)
	}
	if !h.Contains(ah) {
		t.Fatalf("original hand mutated")
	}
	if _, ok := rest.Without(ah); ok {
		t.Fatalf("removed a card that is not held")
	}
}

func TestTrickLeadSuit(t *testing.T) {
	tr := NewTrick(2, nil)
	if _, ok := tr.LeadSuit(); ok {
		t.Fatalf("empty trick has no lead suit")
	}
	tr.Plays = append(tr.Plays, Play{Player: 2, Card: Card{Suit: SuitDiamonds, Rank: RankNine}})
	s, ok := tr.LeadSuit()
	if !ok || s != SuitDiamonds {
		t.Fatalf("expected diamonds lead, got %v %v", s, ok)
	}

	other := NewTrick(0, nil)
	other.Plays = append(other.Plays, Play{Player: 1, Card: Card{Suit: SuitClubs, Rank: RankNine}})
	if _, ok := other.LeadSuit(); ok {
		t.Fatalf("lead suit requires the leader's card")
	}
}

func TestTrickClone(t *testing.T) {
	tr := NewTrick(0, SuitPtr(SuitSpades))
	tr.Plays = append(tr.Plays, Play{Player: 0, Card: Card{Suit: SuitHearts, Rank: RankTwo}})
	c := tr.Clone()
	c.Plays = append(c.Plays, Play{Player: 1, Card: Card{Suit: SuitHearts, Rank: RankThree}})
	*c.Trump = SuitHearts
	if tr.Len() != 1 || *tr.Trump != SuitSpades {
		t.Fatalf("clone shares state with original")
	}
}
