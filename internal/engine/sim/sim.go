package sim

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"whist/internal/bots"
	"whist/internal/engine"
)

type ActionRecord struct {
	Deal  int
	Step  int
	P     int
	Trick string
	Card  engine.Card
}

type Options struct {
	Seed  int64
	Deals int
	Seats [engine.NumPlayers]bots.Kind
}

// DefaultOptions seats simple bots at 0 and 2 against the given opponent.
func DefaultOptions(seed int64, deals int, opponent bots.Kind) Options {
	return Options{
		Seed:  seed,
		Deals: deals,
		Seats: [engine.NumPlayers]bots.Kind{bots.KindSimple, opponent, bots.KindSimple, opponent},
	}
}

type Result struct {
	Deals     int
	Decisions int
	TricksWon [engine.NumPlayers]int
}

// TricksByKind sums tricks won per bot kind.
func (r Result) TricksByKind(seats [engine.NumPlayers]bots.Kind) map[bots.Kind]int {
	out := map[bots.Kind]int{}
	for i, k := range seats {
		out[k] += r.TricksWon[i]
	}
	return out
}

// Summary renders TricksByKind with kinds in a stable order.
func (r Result) Summary(seats [engine.NumPlayers]bots.Kind) string {
	byKind := r.TricksByKind(seats)
	kinds := maps.Keys(byKind)
	slices.Sort(kinds)
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, byKind[k]))
	}
	return strings.Join(parts, " ")
}

// trumpFor rotates hearts, clubs, diamonds, spades, then a no-trump deal.
func trumpFor(deal int) *engine.Suit {
	i := deal % (engine.NumSuits + 1)
	if i == engine.NumSuits {
		return nil
	}
	return engine.SuitPtr(engine.Suits()[i])
}

func RunSelfPlay(opts Options) (Result, error) {
	res := Result{}
	for d := 0; d < opts.Deals; d++ {
		seed := opts.Seed + int64(d)
		players := [engine.NumPlayers]bots.Bot{}
		for i, kind := range opts.Seats {
			b, err := bots.New(kind, seed+int64(10*(i+1)))
			if err != nil {
				return res, err
			}
			players[i] = b
		}

		table := engine.NewTable(seed, d%engine.NumPlayers, trumpFor(d))
		records := []ActionRecord{}
		for step := 0; !engine.Done(table); step++ {
			player, ok := engine.CurrentPlayer(table)
			if !ok {
				return res, failure(seed, d, step, -1, records, "no current player")
			}
			hand, trick := engine.Snapshot(table, player)
			if trick.Len() >= engine.NumPlayers {
				return res, failure(seed, d, step, player, records, fmt.Sprintf("invalid trick size: %d", trick.Len()))
			}
			card, err := players[player].ChooseCard(hand, trick)
			if err != nil {
				return res, failure(seed, d, step, player, records, fmt.Sprintf("choose error: %v", err))
			}
			if !slices.Contains(hand.Cards(), card) {
				return res, failure(seed, d, step, player, records, fmt.Sprintf("chose %v not in hand %v", card, hand))
			}
			res.Decisions++
			records = append(records, ActionRecord{
				Deal:  d,
				Step:  step,
				P:     player,
				Trick: trickString(trick),
				Card:  card,
			})
			if err := engine.ApplyPlay(&table, player, card); err != nil {
				return res, failure(seed, d, step, player, records, fmt.Sprintf("apply error: %v", err))
			}
			if err := checkInvariants(table); err != nil {
				return res, failure(seed, d, step, player, records, err.Error())
			}
		}
		for i, n := range table.TricksWon {
			res.TricksWon[i] += n
		}
		res.Deals++
	}
	return res, nil
}

func checkInvariants(t engine.Table) error {
	total, dup := countCards(t)
	if total != engine.NumSuits*engine.NumRanks {
		return fmt.Errorf("card count mismatch: %d", total)
	}
	if dup {
		return fmt.Errorf("duplicate card detected")
	}
	if t.Trick.Len() >= engine.NumPlayers {
		return fmt.Errorf("trick not closed: %d", t.Trick.Len())
	}
	won := 0
	for _, n := range t.TricksWon {
		won += n
	}
	if won != len(t.Tricks) {
		return fmt.Errorf("tricks won %d != tricks played %d", won, len(t.Tricks))
	}
	for p, h := range t.Hands {
		if h.Len() != engine.HandSize-len(t.Tricks)-playedThisTrick(t.Trick, p) {
			return fmt.Errorf("hand size mismatch for player %d: %d", p, h.Len())
		}
	}
	return nil
}

func playedThisTrick(t engine.Trick, player int) int {
	if _, ok := t.CardPlayed(player); ok {
		return 1
	}
	return 0
}

func countCards(t engine.Table) (int, bool) {
	seen := map[engine.Card]bool{}
	total := 0
	dup := false
	add := func(c engine.Card) {
		total++
		if seen[c] {
			dup = true
		}
		seen[c] = true
	}
	for _, h := range t.Hands {
		for _, c := range h.Cards() {
			add(c)
		}
	}
	for _, trick := range t.Tricks {
		for _, p := range trick {
			add(p.Card)
		}
	}
	for _, c := range t.Trick.Cards() {
		add(c)
	}
	return total, dup
}

func trickString(t engine.Trick) string {
	parts := make([]string, 0, len(t.Plays))
	for _, p := range t.Plays {
		parts = append(parts, fmt.Sprintf("p%d:%v", p.Player, p.Card))
	}
	trump := "none"
	if t.Trump != nil {
		trump = t.Trump.String()
	}
	return fmt.Sprintf("trump=%s [%s]", trump, strings.Join(parts, " "))
}

func failure(seed int64, deal int, step int, player int, records []ActionRecord, reason string) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	log := ""
	for _, r := range records[start:] {
		log += fmt.Sprintf("[d%d s%d p%d %s] %v\n", r.Deal, r.Step, r.P, r.Trick, r.Card)
	}
	return fmt.Errorf("seed=%d deal=%d step=%d player=%d reason=%s\nlast actions:\n%s",
		seed, deal, step, player, reason, log)
}
