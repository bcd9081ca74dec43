package blackjack

const (
	Ace   = 1
	Two   = 2
	Three = 3
	Four  = 4
	Five  = 5
	Six   = 6
	Seven = 7
	Eight = 8
	Nine  = 9
	Ten   = 10 // 10, J, Q, K
)

const numRanks = 10

const lossProfit = -1.0
const winProfit = 1.0

// Both the dealer and the simulated player stand on 17 or more.
const DealerStandsOn = 17
const PlayerStandsOn = 17

const maxHandTotal = 21

// A dealer hand that is still drawing is at most 16, so a bust ends on 26 at worst.
const MaxDealerTotal = DealerStandsOn - 1 + Ten

const softBonus = 10

const (
	cardsPerRank = 4
	tensPerDeck  = 16
	cardsPerDeck = 52
)
