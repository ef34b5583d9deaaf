package server

import (
	"errors"

	"whist/internal/bots"
	"whist/internal/engine"
	"whist/internal/engine/sim"
)

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorView(code string, err error) *ErrorView {
	return &ErrorView{Code: code, Message: err.Error()}
}

// chooseCard runs bot against the snapshot described by req.
func chooseCard(bot bots.Bot, req ChooseRequest) (*ChooseResponse, *ErrorView) {
	hand, trick, err := req.ToEngine()
	switch {
	case errors.Is(err, errBadHand):
		return nil, errorView("bad_hand", err)
	case errors.Is(err, errBadTrick):
		return nil, errorView("bad_trick", err)
	case err != nil:
		return nil, errorView("bad_request", err)
	}

	card, err := bot.ChooseCard(hand, trick)
	if err != nil {
		return nil, errorView("choose_failed", err)
	}
	player := (trick.Leader + trick.Len()) % engine.NumPlayers
	return &ChooseResponse{
		Player: player,
		Card:   cardToDTO(card),
		Events: buildEvents(trick, player, card),
	}, nil
}

func runSimulation(req SimulateRequest) (sim.Options, *SimulationView, *ErrorView) {
	seats, err := req.seats()
	if err != nil {
		return sim.Options{}, nil, errorView("bad_request", err)
	}
	deals := req.Deals
	if deals <= 0 {
		deals = 1
	}
	if deals > maxSimDeals {
		deals = maxSimDeals
	}
	opts := sim.Options{Seed: req.Seed, Deals: deals, Seats: seats}
	res, err := sim.RunSelfPlay(opts)
	if err != nil {
		return opts, nil, errorView("sim_failed", err)
	}
	return opts, BuildSimulationView(opts, res), nil
}
