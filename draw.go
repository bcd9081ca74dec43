package blackjack

// rankProbability is the chance of drawing rank from an infinite deck.
func rankProbability(rank int) float64 {
	if rank == Ten {
		return 4.0 / 13
	}
	return 1.0 / 13
}

// naturalComplement returns the rank that would give the dealer a natural with up,
// or 0 when up cannot start one.
func naturalComplement(up int) int {
	switch up {
	case Ace:
		return Ten
	case Ten:
		return Ace
	default:
		return 0
	}
}

// playerDrawProbability is the chance the next card out of s is rank, given that the dealer
// holds an unseen hole card which is not complement. complement 0 means no conditioning.
func playerDrawProbability(s *Shoe, rank, complement int) float64 {
	count := float64(s.Count(rank))
	size := float64(s.Size())
	if count == 0 {
		return 0
	}
	if complement == 0 {
		return count / size
	}
	if rank == complement {
		return count / (size - 1)
	}
	rest := size - float64(s.Count(complement))
	return (count / (size - 1)) * ((rest - 1) / rest)
}

// holeDrawProbability is the chance the dealer's hole card is rank, given it is not complement.
func holeDrawProbability(s *Shoe, rank, complement int) float64 {
	count := float64(s.Count(rank))
	if count == 0 {
		return 0
	}
	if complement == 0 {
		return count / float64(s.Size())
	}
	if rank == complement {
		return 0
	}
	return count / float64(s.Size()-s.Count(complement))
}
