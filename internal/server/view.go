package server

import (
	"whist/internal/bots"
	"whist/internal/engine"
	"whist/internal/engine/sim"
)

type SeatView struct {
	Seat      int    `json:"seat"`
	Bot       string `json:"bot"`
	TricksWon int    `json:"tricksWon"`
}

type SimulationView struct {
	Seed      int64      `json:"seed"`
	Deals     int        `json:"deals"`
	Decisions int        `json:"decisions"`
	Seats     []SeatView `json:"seats"`
	Summary   string     `json:"summary"`
}

func BuildSimulationView(opts sim.Options, res sim.Result) *SimulationView {
	seats := make([]SeatView, 0, engine.NumPlayers)
	for i, k := range opts.Seats {
		seats = append(seats, SeatView{Seat: i, Bot: string(k), TricksWon: res.TricksWon[i]})
	}
	return &SimulationView{
		Seed:      opts.Seed,
		Deals:     res.Deals,
		Decisions: res.Decisions,
		Seats:     seats,
		Summary:   res.Summary(opts.Seats),
	}
}

// kinds lists the bot kinds seated, for logging.
func kinds(opts sim.Options) []bots.Kind {
	return opts.Seats[:]
}
