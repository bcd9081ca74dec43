package blackjack

// Infinite evaluates a hand against an up-card dealt from an infinite deck: every draw is
// independent, with probability 1/13 per rank and 4/13 for tens. The dealer does not peek.
//
// An Infinite caches results and is not safe for concurrent use.
type Infinite struct {
	up      int
	hand    Hand
	dealer  *dealer
	hitMemo map[int]float64
}

func NewInfinite(up, card1, card2 int) (*Infinite, error) {
	for _, rank := range []int{up, card1, card2} {
		if err := validRank(rank); err != nil {
			return nil, err
		}
	}
	inf := &Infinite{
		up:      up,
		hand:    NewHand(card1, card2),
		hitMemo: make(map[int]float64),
	}
	inf.dealer = newDealer(inf, true)
	return inf, nil
}

func (inf *Infinite) Up() int { return inf.up }

func (inf *Infinite) Hand() []int { return inf.hand.Cards() }

// DrawProbability returns the chance of drawing rank, which never changes.
func (inf *Infinite) DrawProbability(rank int) float64 {
	if rank < Ace || rank > Ten {
		return 0
	}
	return rankProbability(rank)
}

func (inf *Infinite) DealerDistribution() Distribution {
	return inf.dealer.distribution(startState(inf.up, true))
}

// ProbabilityDealer returns the probability that a dealer holding dealerHandValue finishes on
// exactly target. soft reports whether dealerHandValue counts an Ace as 11.
func (inf *Infinite) ProbabilityDealer(target, dealerHandValue int, soft bool) float64 {
	return inf.dealer.distribution(dealerState{value: dealerHandValue, soft: soft}).At(target)
}

func (inf *Infinite) ExpectedValueStand() float64 {
	if inf.hand.Total() > maxHandTotal {
		return lossProfit
	}
	return inf.DealerDistribution().versus(inf.hand.Total())
}

// ExpectedValueHit returns the expected payoff of drawing until the hand reaches 17.
// The result depends only on the hand total.
func (inf *Infinite) ExpectedValueHit() float64 {
	total := inf.hand.Total()
	if score, ok := inf.hitMemo[total]; ok {
		return score
	}

	score := 0.0
	for card := Ace; card <= Ten; card++ {
		p := rankProbability(card)
		inf.hand.push(card)
		if inf.hand.Total() < PlayerStandsOn {
			score += p * inf.ExpectedValueHit()
		} else {
			score += p * inf.ExpectedValueStand()
		}
		inf.hand.pop()
	}

	inf.hitMemo[total] = score
	return score
}

func (inf *Infinite) dealerProbability(rank int, _ bool) float64 {
	return rankProbability(rank)
}

func (inf *Infinite) drawn(_ int, fn func()) {
	fn()
}

func (inf *Infinite) composition() [numRanks]int {
	return [numRanks]int{}
}
