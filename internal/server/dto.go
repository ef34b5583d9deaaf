package server

import (
	"errors"
	"fmt"

	"whist/internal/bots"
	"whist/internal/engine"
)

type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type PlayDTO struct {
	Player int     `json:"player"`
	Card   CardDTO `json:"card"`
}

type TrickDTO struct {
	Leader int       `json:"leader"`
	Trump  *string   `json:"trump,omitempty"`
	Plays  []PlayDTO `json:"plays"`
}

type ChooseRequest struct {
	Hand  []CardDTO `json:"hand"`
	Trick TrickDTO  `json:"trick"`
}

type ChooseResponse struct {
	Player int     `json:"player"`
	Card   CardDTO `json:"card"`
	Events []Event `json:"events,omitempty"`
}

type SimulateRequest struct {
	Seed  int64    `json:"seed"`
	Deals int      `json:"deals"`
	Seats []string `json:"seats,omitempty"`
}

const maxSimDeals = 1000

var (
	errBadHand  = errors.New("bad hand")
	errBadTrick = errors.New("bad trick")
)

func (c CardDTO) toEngine() (engine.Card, error) {
	s, err := engine.ParseSuit(c.Suit)
	if err != nil {
		return engine.Card{}, err
	}
	r, err := engine.ParseRank(c.Rank)
	if err != nil {
		return engine.Card{}, err
	}
	return engine.Card{Suit: s, Rank: r}, nil
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: c.Suit.String(), Rank: c.Rank.String()}
}

func handFromDTO(cards []CardDTO) (engine.Hand, error) {
	if len(cards) == 0 {
		return engine.Hand{}, fmt.Errorf("%w: no cards", errBadHand)
	}
	out := make([]engine.Card, 0, len(cards))
	for _, c := range cards {
		card, err := c.toEngine()
		if err != nil {
			return engine.Hand{}, fmt.Errorf("%w: %v", errBadHand, err)
		}
		out = append(out, card)
	}
	h, err := engine.NewHand(out...)
	if err != nil {
		return engine.Hand{}, fmt.Errorf("%w: %v", errBadHand, err)
	}
	return h, nil
}

func validSeat(p int) bool { return p >= 0 && p < engine.NumPlayers }

func trickFromDTO(t TrickDTO) (engine.Trick, error) {
	if !validSeat(t.Leader) {
		return engine.Trick{}, fmt.Errorf("%w: leader %d out of range", errBadTrick, t.Leader)
	}
	var trump *engine.Suit
	if t.Trump != nil && *t.Trump != "" {
		s, err := engine.ParseSuit(*t.Trump)
		if err != nil {
			return engine.Trick{}, fmt.Errorf("%w: %v", errBadTrick, err)
		}
		trump = &s
	}
	trick := engine.NewTrick(t.Leader, trump)
	seen := map[engine.Card]bool{}
	for i, p := range t.Plays {
		want := (t.Leader + i) % engine.NumPlayers
		if p.Player != want {
			return engine.Trick{}, fmt.Errorf("%w: play %d by player %d, expected %d", errBadTrick, i, p.Player, want)
		}
		card, err := p.Card.toEngine()
		if err != nil {
			return engine.Trick{}, fmt.Errorf("%w: %v", errBadTrick, err)
		}
		if seen[card] {
			return engine.Trick{}, fmt.Errorf("%w: %v played twice", errBadTrick, card)
		}
		seen[card] = true
		trick.Plays = append(trick.Plays, engine.Play{Player: p.Player, Card: card})
	}
	return trick, nil
}

func trickToDTO(t engine.Trick) TrickDTO {
	out := TrickDTO{Leader: t.Leader, Plays: make([]PlayDTO, 0, len(t.Plays))}
	if t.Trump != nil {
		s := t.Trump.String()
		out.Trump = &s
	}
	for _, p := range t.Plays {
		out.Plays = append(out.Plays, PlayDTO{Player: p.Player, Card: cardToDTO(p.Card)})
	}
	return out
}

// ToEngine converts the request into the snapshot the bots consume. Cards
// present in both the hand and the trick are rejected.
func (r ChooseRequest) ToEngine() (engine.Hand, engine.Trick, error) {
	hand, err := handFromDTO(r.Hand)
	if err != nil {
		return engine.Hand{}, engine.Trick{}, err
	}
	trick, err := trickFromDTO(r.Trick)
	if err != nil {
		return engine.Hand{}, engine.Trick{}, err
	}
	for _, c := range trick.Cards() {
		if hand.Contains(c) {
			return engine.Hand{}, engine.Trick{}, fmt.Errorf("%w: %v is both in hand and played", errBadTrick, c)
		}
	}
	return hand, trick, nil
}

func (r SimulateRequest) seats() ([engine.NumPlayers]bots.Kind, error) {
	var out [engine.NumPlayers]bots.Kind
	if len(r.Seats) == 0 {
		return [engine.NumPlayers]bots.Kind{bots.KindSimple, bots.KindRandom, bots.KindSimple, bots.KindRandom}, nil
	}
	if len(r.Seats) != engine.NumPlayers {
		return out, fmt.Errorf("need %d seats, got %d", engine.NumPlayers, len(r.Seats))
	}
	for i, s := range r.Seats {
		k, err := bots.ParseKind(s)
		if err != nil {
			return out, err
		}
		out[i] = k
	}
	return out, nil
}
