package blackjack

import (
	"fmt"
	"slices"
)

// Scenario is one evaluation request: a dealer up-card, the player's two cards and the deck model.
type Scenario struct {
	Up       int    `json:"up"`
	Cards    [2]int `json:"cards"`
	Decks    int    `json:"decks,omitempty"`
	Infinite bool   `json:"infinite,omitempty"`
	// Rules applies to finite shoes only. Nil means DefaultRules.
	Rules *Rules `json:"rules,omitempty"`
}

type Result struct {
	Scenario Scenario `json:"scenario"`
	Stand    float64  `json:"stand"`
	Hit      float64  `json:"hit"`
}

// Best returns the better of the two strategies.
func (r Result) Best() float64 {
	return max(r.Stand, r.Hit)
}

func (s Scenario) String() string {
	model := fmt.Sprintf("%d decks", s.Decks)
	switch {
	case s.Infinite:
		model = "infinite deck"
	case s.Decks == 1:
		model = "1 deck"
	}
	return fmt.Sprintf("%d,%d vs %d (%s)", s.Cards[0], s.Cards[1], s.Up, model)
}

func (s Scenario) Evaluate() (Result, error) {
	if s.Infinite {
		inf, err := NewInfinite(s.Up, s.Cards[0], s.Cards[1])
		if err != nil {
			return Result{}, fmt.Errorf("scenario %s: %w", s, err)
		}
		return Result{Scenario: s, Stand: inf.ExpectedValueStand(), Hit: inf.ExpectedValueHit()}, nil
	}

	rules := DefaultRules()
	if s.Rules != nil {
		rules = *s.Rules
	}
	f, err := NewFiniteWithRules(s.Up, s.Cards[0], s.Cards[1], s.Decks, rules)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %s: %w", s, err)
	}
	return Result{Scenario: s, Stand: f.ExpectedValueStand(), Hit: f.ExpectedValueHit()}, nil
}

// AllScenarios lists every unordered player pair against every up-card: 55 pairs x 10 up-cards.
func AllScenarios(numDecks int, infinite bool) []Scenario {
	scenarios := make([]Scenario, 0, 550)
	for card1 := Ace; card1 <= Ten; card1++ {
		for card2 := Ace; card2 <= card1; card2++ {
			for up := Ace; up <= Ten; up++ {
				scenarios = append(scenarios, Scenario{
					Up:       up,
					Cards:    [2]int{card2, card1},
					Decks:    numDecks,
					Infinite: infinite,
				})
			}
		}
	}
	return scenarios
}

// DealWeight counts the ordered deals out of a full shoe that give the player the unordered
// pair {card1, card2} and the dealer up. Summed over AllScenarios it is (52n)(52n-1)(52n-2).
func DealWeight(numDecks, up, card1, card2 int) float64 {
	drawnCards := []int{card1, card2, up}
	tens := 0
	repeats := 0
	slices.Sort(drawnCards)
	for i := 0; i < len(drawnCards); i++ {
		if drawnCards[i] == Ten {
			tens++
		} else if i > 0 && drawnCards[i] == drawnCards[i-1] {
			repeats++
		}
	}
	neither := len(drawnCards) - tens - repeats
	var permutations float64
	if card1 == card2 {
		permutations = 1
	} else {
		permutations = 2
	}
	for i := 0; i < neither; i++ {
		permutations *= float64(cardsPerRank * numDecks)
	}
	for i := 1; i <= repeats; i++ {
		permutations *= float64(cardsPerRank*numDecks - i)
	}
	for i := 0; i < tens; i++ {
		permutations *= float64(tensPerDeck*numDecks - i)
	}
	return permutations
}

// Frequency is the chance that a fresh deal produces this scenario's pair and up-card.
// Frequencies over AllScenarios sum to 1.
func (s Scenario) Frequency() float64 {
	card1, card2 := s.Cards[0], s.Cards[1]
	if s.Infinite {
		p := rankProbability(card1) * rankProbability(card2) * rankProbability(s.Up)
		if card1 != card2 {
			p *= 2
		}
		return p
	}
	cards := float64(cardsPerDeck * s.Decks)
	return DealWeight(s.Decks, s.Up, card1, card2) / (cards * (cards - 1) * (cards - 2))
}
