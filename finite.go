package blackjack

import "fmt"

// Finite evaluates a hand against an up-card dealt from a shoe of numDecks decks,
// taking every dealt card out of the shoe.
//
// A Finite is not safe for concurrent use: evaluations borrow cards from its shoe.
// Independent instances share nothing and may run in parallel.
type Finite struct {
	up         int
	hand       Hand
	shoe       *Shoe
	rules      Rules
	complement int
	dealer     *dealer
	hitMemo    map[hitKey]float64
}

type hitKey struct {
	composition [numRanks]int
	total       int
}

func NewFinite(up, card1, card2, numDecks int) (*Finite, error) {
	return NewFiniteWithRules(up, card1, card2, numDecks, DefaultRules())
}

func NewFiniteWithRules(up, card1, card2, numDecks int, rules Rules) (*Finite, error) {
	for _, rank := range []int{up, card1, card2} {
		if err := validRank(rank); err != nil {
			return nil, err
		}
	}
	shoe, err := NewShoe(numDecks)
	if err != nil {
		return nil, err
	}
	for _, rank := range []int{up, card1, card2} {
		if err := shoe.Remove(rank); err != nil {
			return nil, fmt.Errorf("dealing %d: %w", rank, err)
		}
	}

	f := &Finite{
		up:      up,
		hand:    NewHand(card1, card2),
		shoe:    shoe,
		rules:   rules,
		hitMemo: make(map[hitKey]float64),
	}
	if rules.DealerPeeks {
		f.complement = naturalComplement(up)
	}
	f.dealer = newDealer(f, rules.SoftDealerAces)
	return f, nil
}

func (f *Finite) Up() int { return f.up }

func (f *Finite) Hand() []int { return f.hand.Cards() }

// Shoe exposes the shoe for inspection.
func (f *Finite) Shoe() *Shoe { return f.shoe }

// DrawProbability returns the chance that the player's next card is rank.
func (f *Finite) DrawProbability(rank int) float64 {
	return playerDrawProbability(f.shoe, rank, f.complement)
}

// DealerDistribution returns the distribution of the dealer's final total
// for the current shoe.
func (f *Finite) DealerDistribution() Distribution {
	return f.dealer.distribution(startState(f.up, f.rules.SoftDealerAces))
}

// ProbabilityDealer returns the probability that the dealer finishes on exactly target.
//
// dealerHandValue equal to the up-card means the dealer holds only the up-card: the hole card
// is still to come and an Ace up-card may count 11. Any other value is a hard total with the
// hole card already drawn.
func (f *Finite) ProbabilityDealer(target, dealerHandValue int) float64 {
	if dealerHandValue == f.up {
		return f.DealerDistribution().At(target)
	}
	return f.dealer.distribution(dealerState{value: dealerHandValue}).At(target)
}

// ExpectedValueStand returns the expected payoff, in bets, of standing now.
func (f *Finite) ExpectedValueStand() float64 {
	if f.hand.Total() > maxHandTotal {
		return lossProfit
	}
	return f.DealerDistribution().versus(f.hand.Total())
}

// ExpectedValueHit returns the expected payoff of drawing a card and continuing to draw
// until the hand reaches 17, then standing.
func (f *Finite) ExpectedValueHit() float64 {
	key := hitKey{composition: f.shoe.Counts(), total: f.hand.Total()}
	if score, ok := f.hitMemo[key]; ok {
		return score
	}

	score := 0.0
	for card := Ace; card <= Ten; card++ {
		p := f.DrawProbability(card)
		if p == 0 {
			continue
		}
		f.shoe.borrow(card, func() {
			f.hand.push(card)
			defer f.hand.pop()

			if f.hand.Total() < PlayerStandsOn {
				score += p * f.ExpectedValueHit()
			} else {
				score += p * f.ExpectedValueStand()
			}
		})
	}

	f.hitMemo[key] = score
	return score
}

func (f *Finite) dealerProbability(rank int, hole bool) float64 {
	if hole {
		return holeDrawProbability(f.shoe, rank, f.complement)
	}
	return float64(f.shoe.Count(rank)) / float64(f.shoe.Size())
}

func (f *Finite) drawn(rank int, fn func()) {
	f.shoe.borrow(rank, fn)
}

func (f *Finite) composition() [numRanks]int {
	return f.shoe.Counts()
}
