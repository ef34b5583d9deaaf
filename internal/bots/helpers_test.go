package bots

import (
	"testing"

	"github.com/stretchr/testify/require"

	"whist/internal/engine"
)

func card(t *testing.T, s string) engine.Card {
	t.Helper()
	c, err := engine.ParseCard(s)
	require.NoError(t, err)
	return c
}

func cards(t *testing.T, ss ...string) []engine.Card {
	t.Helper()
	out := make([]engine.Card, 0, len(ss))
	for _, s := range ss {
		out = append(out, card(t, s))
	}
	return out
}

func hand(t *testing.T, ss ...string) engine.Hand {
	t.Helper()
	h, err := engine.NewHand(cards(t, ss...)...)
	require.NoError(t, err)
	return h
}

// trickOf records the given cards in seat order starting at leader.
func trickOf(t *testing.T, leader int, trump *engine.Suit, ss ...string) engine.Trick {
	t.Helper()
	tr := engine.NewTrick(leader, trump)
	for i, c := range cards(t, ss...) {
		tr.Plays = append(tr.Plays, engine.Play{Player: (leader + i) % engine.NumPlayers, Card: c})
	}
	return tr
}

var (
	spades   = engine.SuitPtr(engine.SuitSpades)
	diamonds = engine.SuitPtr(engine.SuitDiamonds)
)
