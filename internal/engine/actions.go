package engine

import (
	"errors"
	"fmt"
)

// Table is the deal-level state used to drive players through 13 tricks.
type Table struct {
	Seed      int64
	Dealer    int
	Trump     *Suit
	Hands     [NumPlayers]Hand
	Trick     Trick
	Tricks    [][]Play
	TricksWon [NumPlayers]int
}

func NewTable(seed int64, dealer int, trump *Suit) Table {
	leader := (dealer + 1) % NumPlayers
	return Table{
		Seed:   seed,
		Dealer: dealer,
		Trump:  trump,
		Hands:  Deal(seed),
		Trick:  NewTrick(leader, trump),
	}
}

// CurrentPlayer returns the seat expected to play next.
func CurrentPlayer(t Table) (int, bool) {
	if Done(t) {
		return -1, false
	}
	return (t.Trick.Leader + len(t.Trick.Plays)) % NumPlayers, true
}

func Done(t Table) bool {
	return len(t.Tricks) == HandSize
}

// Snapshot returns copies of what the given player may see when deciding.
func Snapshot(t Table, player int) (Hand, Trick) {
	return t.Hands[player], t.Trick.Clone()
}

// ApplyPlay removes card from the player's hand and records it in the trick.
// Follow-suit is not enforced here; callers that need it use LegalPlays.
func ApplyPlay(t *Table, player int, card Card) error {
	expected, ok := CurrentPlayer(*t)
	if !ok {
		return errors.New("deal is over")
	}
	if player != expected {
		return errors.New("not your turn to play")
	}
	hand, ok := t.Hands[player].Without(card)
	if !ok {
		return fmt.Errorf("card not in hand: %v", card)
	}
	t.Hands[player] = hand
	t.Trick.Plays = append(t.Trick.Plays, Play{Player: player, Card: card})

	if t.Trick.Complete() {
		winner, ok := TrickWinner(t.Trick)
		if !ok {
			return errors.New("trick has no winner")
		}
		t.Tricks = append(t.Tricks, append([]Play(nil), t.Trick.Plays...))
		t.TricksWon[winner]++
		t.Trick = NewTrick(winner, t.Trump)
	}
	return nil
}
