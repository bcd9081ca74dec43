package blackjack

// Hand is the player's cards. Its total is hard: an Ace always counts 1.
type Hand struct {
	cards []int
	total int
}

func NewHand(card1, card2 int) Hand {
	h := Hand{cards: make([]int, 0, 8)}
	h.push(card1)
	h.push(card2)
	return h
}

func (h *Hand) Total() int {
	return h.total
}

func (h *Hand) Cards() []int {
	return append([]int(nil), h.cards...)
}

func (h *Hand) push(card int) {
	h.cards = append(h.cards, card)
	h.total += card
}

func (h *Hand) pop() {
	last := h.cards[len(h.cards)-1]
	h.cards = h.cards[:len(h.cards)-1]
	h.total -= last
}
