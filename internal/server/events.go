package server

import "whist/internal/engine"

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type EventPayload struct {
	Player int       `json:"player"`
	Cards  []CardDTO `json:"cards,omitempty"`
}

// buildEvents describes what playing card does to trick: the play itself and
// who would then be winning (or has won) the trick.
func buildEvents(trick engine.Trick, player int, card engine.Card) []Event {
	events := []Event{{Type: "card_played", Data: EventPayload{Player: player, Cards: []CardDTO{cardToDTO(card)}}}}

	next := trick.Clone()
	next.Plays = append(next.Plays, engine.Play{Player: player, Card: card})
	if winner, ok := engine.TrickWinner(next); ok {
		typ := "trick_leader"
		if next.Complete() {
			typ = "trick_won"
		}
		events = append(events, Event{Type: typ, Data: EventPayload{Player: winner}})
	}
	return events
}
