package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Suit int

type Rank int

// Declaration order is only used for tie-breaks, never for trick strength.
const (
	SuitHearts Suit = iota
	SuitClubs
	SuitDiamonds
	SuitSpades
)

const (
	RankTwo Rank = iota
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

const (
	NumSuits   = 4
	NumRanks   = 13
	NumPlayers = 4
	HandSize   = 13
)

var (
	suitCodes = [NumSuits]string{"H", "C", "D", "S"}
	suitNames = [NumSuits]string{"Hearts", "Clubs", "Diamonds", "Spades"}
	rankCodes = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	rankNames = [NumRanks]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}
)

// Suits lists every suit in declaration order.
func Suits() []Suit {
	return []Suit{SuitHearts, SuitClubs, SuitDiamonds, SuitSpades}
}

func (s Suit) Valid() bool { return s >= SuitHearts && s <= SuitSpades }

func (r Rank) Valid() bool { return r >= RankTwo && r <= RankAce }

func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitCodes[s]
}

func (s Suit) Name() string {
	if !s.Valid() {
		return "?"
	}
	return suitNames[s]
}

func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankCodes[r]
}

func (r Rank) Name() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r]
}

func ParseSuit(s string) (Suit, error) {
	for i, code := range suitCodes {
		if strings.EqualFold(s, code) || strings.EqualFold(s, suitNames[i]) {
			return Suit(i), nil
		}
	}
	return SuitHearts, fmt.Errorf("invalid suit %q", s)
}

func ParseRank(r string) (Rank, error) {
	for i, code := range rankCodes {
		if strings.EqualFold(r, code) || strings.EqualFold(r, rankNames[i]) {
			return Rank(i), nil
		}
	}
	return RankTwo, fmt.Errorf("invalid rank %q", r)
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Name returns the long form, e.g. "Ace of Spades".
func (c Card) Name() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

func (c Card) Less(o Card) bool { return Compare(c, o) < 0 }

// Compare orders cards by suit index, then rank index.
func Compare(a, b Card) int {
	switch {
	case a.Suit < b.Suit:
		return -1
	case a.Suit > b.Suit:
		return 1
	case a.Rank < b.Rank:
		return -1
	case a.Rank > b.Rank:
		return 1
	default:
		return 0
	}
}

// ParseCard parses the short form produced by Card.String ("QD", "10H").
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	r, err := ParseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	st, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}
	return Card{Suit: st, Rank: r}, nil
}

var ErrDuplicateCard = errors.New("duplicate card")

// Hand is the set of cards held by one player. Cards are kept unique and in
// ascending Compare order; callers iterate through Cards.
type Hand struct {
	cards []Card
}

func NewHand(cards ...Card) (Hand, error) {
	h := Hand{cards: make([]Card, 0, len(cards))}
	for _, c := range cards {
		if !c.Suit.Valid() || !c.Rank.Valid() {
			return Hand{}, fmt.Errorf("invalid card %v", c)
		}
		if h.Contains(c) {
			return Hand{}, fmt.Errorf("%w: %v", ErrDuplicateCard, c)
		}
		h.cards = append(h.cards, c)
	}
	sort.Slice(h.cards, func(i, j int) bool { return h.cards[i].Less(h.cards[j]) })
	return h, nil
}

func (h Hand) Len() int { return len(h.cards) }

// Cards returns a copy of the hand in ascending order.
func (h Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

func (h Hand) Contains(card Card) bool {
	for _, c := range h.cards {
		if c == card {
			return true
		}
	}
	return false
}

// Without returns a new hand with card removed.
func (h Hand) Without(card Card) (Hand, bool) {
	for i, c := range h.cards {
		if c == card {
			out := make([]Card, 0, len(h.cards)-1)
			out = append(out, h.cards[:i]...)
			out = append(out, h.cards[i+1:]...)
			return Hand{cards: out}, true
		}
	}
	return h, false
}

func (h Hand) String() string {
	parts := make([]string, 0, len(h.cards))
	for _, c := range h.cards {
		parts = append(parts, c.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

type Play struct {
	Player int
	Card   Card
}

// Trick is one round of play. Trump is nil for no-trump play.
type Trick struct {
	Leader int
	Trump  *Suit
	Plays  []Play
}

func NewTrick(leader int, trump *Suit) Trick {
	return Trick{Leader: leader, Trump: trump, Plays: make([]Play, 0, NumPlayers)}
}

func (t Trick) CardPlayed(player int) (Card, bool) {
	for _, p := range t.Plays {
		if p.Player == player {
			return p.Card, true
		}
	}
	return Card{}, false
}

// LeadSuit is the suit of the leader's card, if the leader has played.
func (t Trick) LeadSuit() (Suit, bool) {
	c, ok := t.CardPlayed(t.Leader)
	if !ok {
		return SuitHearts, false
	}
	return c.Suit, true
}

// Cards returns the played cards in play order.
func (t Trick) Cards() []Card {
	out := make([]Card, 0, len(t.Plays))
	for _, p := range t.Plays {
		out = append(out, p.Card)
	}
	return out
}

func (t Trick) Len() int { return len(t.Plays) }

func (t Trick) Complete() bool { return len(t.Plays) >= NumPlayers }

// Clone returns a copy that shares nothing with t.
func (t Trick) Clone() Trick {
	out := Trick{Leader: t.Leader, Plays: append([]Play(nil), t.Plays...)}
	if t.Trump != nil {
		s := *t.Trump
		out.Trump = &s
	}
	return out
}

func SuitPtr(s Suit) *Suit {
	return &s
}
