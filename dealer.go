package blackjack

const distributionSize = MaxDealerTotal - DealerStandsOn + 1

// Distribution holds the probability of each final dealer total from 17 to 26.
// Totals above 21 are busts.
type Distribution [distributionSize]float64

// At returns the probability that the dealer finishes on exactly total.
func (d Distribution) At(total int) float64 {
	if total < DealerStandsOn || total > MaxDealerTotal {
		return 0
	}
	return d[total-DealerStandsOn]
}

func (d Distribution) Bust() float64 {
	bust := 0.0
	for total := maxHandTotal + 1; total <= MaxDealerTotal; total++ {
		bust += d.At(total)
	}
	return bust
}

func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, p := range d {
		sum += p
	}
	return sum
}

// versus is the payoff of a player standing on playerTotal against this distribution.
func (d Distribution) versus(playerTotal int) float64 {
	if playerTotal > maxHandTotal {
		return lossProfit
	}
	score := winProfit * d.Bust()
	for total := DealerStandsOn; total < playerTotal; total++ {
		score += winProfit * d.At(total)
	}
	for total := max(playerTotal+1, DealerStandsOn); total <= maxHandTotal; total++ {
		score += lossProfit * d.At(total)
	}
	return score
}

// dealerState is the dealer's hand between draws. value counts a soft Ace as 11.
// hole is set until the hole card has been drawn.
type dealerState struct {
	value int
	soft  bool
	hole  bool
}

func startState(up int, softAces bool) dealerState {
	if up == Ace && softAces {
		return dealerState{value: Ace + softBonus, soft: true, hole: true}
	}
	return dealerState{value: up, hole: true}
}

// add returns the state after drawing card. It never modifies s.
func (s dealerState) add(card int, softAces bool) dealerState {
	next := dealerState{value: s.value + card, soft: s.soft}
	if card == Ace && softAces && !s.soft && next.value+softBonus <= maxHandTotal {
		next.value += softBonus
		next.soft = true
	}
	if next.value > maxHandTotal && next.soft {
		next.value -= softBonus
		next.soft = false
	}
	return next
}

func (s dealerState) standing() bool {
	return s.value >= DealerStandsOn
}

// cardSource is what the dealer draws from.
type cardSource interface {
	// dealerProbability is the chance the dealer's next card is rank. hole marks the hole card.
	dealerProbability(rank int, hole bool) float64
	// drawn runs fn with rank out of the source.
	drawn(rank int, fn func())
	// composition identifies the source's current contents for memoisation.
	composition() [numRanks]int
}

type dealerKey struct {
	composition [numRanks]int
	state       dealerState
}

type dealer struct {
	source   cardSource
	softAces bool
	memo     map[dealerKey]Distribution
}

func newDealer(source cardSource, softAces bool) *dealer {
	return &dealer{
		source:   source,
		softAces: softAces,
		memo:     make(map[dealerKey]Distribution),
	}
}

// distribution returns the final-total distribution of a dealer in state s who keeps
// drawing while below 17. The source is back to its starting contents on return.
func (d *dealer) distribution(s dealerState) Distribution {
	var dist Distribution
	if s.standing() {
		dist[min(s.value, MaxDealerTotal)-DealerStandsOn] = 1
		return dist
	}

	key := dealerKey{composition: d.source.composition(), state: s}
	if cached, ok := d.memo[key]; ok {
		return cached
	}

	for card := Ace; card <= Ten; card++ {
		p := d.source.dealerProbability(card, s.hole)
		if p == 0 {
			continue
		}
		next := s.add(card, d.softAces)
		if next.standing() {
			dist[next.value-DealerStandsOn] += p
			continue
		}
		d.source.drawn(card, func() {
			sub := d.distribution(next)
			for i := range dist {
				dist[i] += p * sub[i]
			}
		})
	}

	d.memo[key] = dist
	return dist
}
