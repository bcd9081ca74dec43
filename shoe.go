package blackjack

import "fmt"

// Shoe counts the cards left by rank: index 0 holds Aces, index 9 every ten-valued card.
type Shoe struct {
	counts   [numRanks]int
	size     int
	numDecks int
}

func NewShoe(numDecks int) (*Shoe, error) {
	if numDecks <= 0 {
		return nil, fmt.Errorf("%w: deck count %d", ErrInvalidInput, numDecks)
	}
	s := &Shoe{numDecks: numDecks}
	for rank := Ace; rank <= Ten; rank++ {
		s.counts[rank-1] = s.capacity(rank)
	}
	s.size = cardsPerDeck * numDecks
	return s, nil
}

func (s *Shoe) capacity(rank int) int {
	if rank == Ten {
		return tensPerDeck * s.numDecks
	}
	return cardsPerRank * s.numDecks
}

func (s *Shoe) Remove(rank int) error {
	if err := validRank(rank); err != nil {
		return err
	}
	if s.counts[rank-1] == 0 {
		return fmt.Errorf("%w: cannot remove %d from the shoe", ErrInvalidDeckState, rank)
	}
	s.counts[rank-1]--
	s.size--
	return nil
}

func (s *Shoe) Add(rank int) error {
	if err := validRank(rank); err != nil {
		return err
	}
	if s.counts[rank-1] >= s.capacity(rank) {
		return fmt.Errorf("%w: cannot add %d to the shoe", ErrInvalidDeckState, rank)
	}
	s.counts[rank-1]++
	s.size++
	return nil
}

func (s *Shoe) Size() int {
	return s.size
}

// Count returns the cards left of rank, or 0 for ranks outside 1..10.
func (s *Shoe) Count(rank int) int {
	if rank < Ace || rank > Ten {
		return 0
	}
	return s.counts[rank-1]
}

// Counts returns a snapshot of the remaining counts, Aces first.
func (s *Shoe) Counts() [numRanks]int {
	return s.counts
}

func (s *Shoe) Decks() int {
	return s.numDecks
}

// borrow takes rank out of the shoe while fn runs and puts it back on every exit path.
// The engines only borrow ranks they have just seen a nonzero count for, so an error here
// is a broken invariant.
func (s *Shoe) borrow(rank int, fn func()) {
	if err := s.Remove(rank); err != nil {
		panic(err)
	}
	defer func() {
		if err := s.Add(rank); err != nil {
			panic(err)
		}
	}()
	fn()
}

func validRank(rank int) error {
	if rank < Ace || rank > Ten {
		return fmt.Errorf("%w: rank %d outside %d..%d", ErrInvalidInput, rank, Ace, Ten)
	}
	return nil
}
