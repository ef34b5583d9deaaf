package bots

import (
	"fmt"
	"math/rand"

	"whist/internal/engine"
)

type Bot interface {
	ChooseCard(hand engine.Hand, trick engine.Trick) (engine.Card, error)
}

type Kind string

const (
	KindSimple Kind = "simple"
	KindRandom Kind = "random"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSimple, KindRandom:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown bot kind %q", s)
	}
}

// New builds a bot of the given kind. seed is only used by random bots.
func New(kind Kind, seed int64) (Bot, error) {
	switch kind {
	case KindSimple:
		return NewSimple(), nil
	case KindRandom:
		return NewRandom(seed), nil
	default:
		return nil, fmt.Errorf("unknown bot kind %q", kind)
	}
}

// RandomBot plays a uniformly random card among those that follow suit.
// It is not safe for concurrent use.
type RandomBot struct {
	RNG *rand.Rand
}

func NewRandom(seed int64) *RandomBot {
	return &RandomBot{RNG: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) ChooseCard(hand engine.Hand, trick engine.Trick) (engine.Card, error) {
	if hand.Len() == 0 {
		return engine.Card{}, ErrEmptyHand
	}
	legal := engine.LegalPlays(hand, trick)
	return legal[b.RNG.Intn(len(legal))], nil
}
