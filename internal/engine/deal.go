package engine

import "math/rand"

// BuildDeck returns the 52-card deck in ascending Compare order.
func BuildDeck() []Card {
	deck := make([]Card, 0, NumSuits*NumRanks)
	for _, s := range Suits() {
		for r := RankTwo; r <= RankAce; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func Shuffle(deck []Card, seed int64) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Deal shuffles a fresh deck with seed and splits it into one hand per seat.
func Deal(seed int64) [NumPlayers]Hand {
	deck := Shuffle(BuildDeck(), seed)
	if HandSize*NumPlayers != len(deck) {
		panic("invalid deal configuration: does not exhaust deck")
	}

	var hands [NumPlayers]Hand
	idx := 0
	for p := 0; p < NumPlayers; p++ {
		h, err := NewHand(deck[idx : idx+HandSize]...)
		if err != nil {
			panic(err)
		}
		hands[p] = h
		idx += HandSize
	}
	return hands
}
