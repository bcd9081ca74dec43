package blackjack

// Rules selects the table conventions used by the finite-shoe engine.
type Rules struct {
	// DealerPeeks makes the dealer check for a natural when showing an Ace or a ten.
	// Play only continues without one, so every probability is conditioned on it.
	DealerPeeks bool `json:"dealerPeeks"`
	// SoftDealerAces lets the dealer count an Ace as 11 when that does not bust.
	SoftDealerAces bool `json:"softDealerAces"`
}

func DefaultRules() Rules {
	return Rules{
		DealerPeeks:    true,
		SoftDealerAces: true,
	}
}
