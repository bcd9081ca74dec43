package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealerStateAdd(t *testing.T) {
	tests := []struct {
		name     string
		state    dealerState
		card     int
		softAces bool
		want     dealerState
	}{
		{"hard draw", dealerState{value: 5}, Seven, true, dealerState{value: 12}},
		{"ace counts eleven", dealerState{value: 6}, Ace, true, dealerState{value: 17, soft: true}},
		{"ace at ten", dealerState{value: 10}, Ace, true, dealerState{value: 21, soft: true}},
		{"ace would bust", dealerState{value: 11}, Ace, true, dealerState{value: 12}},
		{"second ace is one", dealerState{value: 11, soft: true}, Ace, true, dealerState{value: 12, soft: true}},
		{"soft hand demoted", dealerState{value: 16, soft: true}, Eight, true, dealerState{value: 14}},
		{"soft hand stays soft", dealerState{value: 13, soft: true}, Five, true, dealerState{value: 18, soft: true}},
		{"hard bust", dealerState{value: 16}, Ten, true, dealerState{value: 26}},
		{"hole flag cleared", dealerState{value: 10, hole: true}, Two, true, dealerState{value: 12}},
		{"hard dealer ace", dealerState{value: 6}, Ace, false, dealerState{value: 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state
			assert.Equal(t, tt.want, tt.state.add(tt.card, tt.softAces))
			assert.Equal(t, before, tt.state)
		})
	}
}

func TestStartState(t *testing.T) {
	assert.Equal(t, dealerState{value: 11, soft: true, hole: true}, startState(Ace, true))
	assert.Equal(t, dealerState{value: 1, hole: true}, startState(Ace, false))
	assert.Equal(t, dealerState{value: 7, hole: true}, startState(Seven, true))
}

func TestDistributionHelpers(t *testing.T) {
	var d Distribution
	d[0] = 0.1  // 17
	d[1] = 0.2  // 18
	d[4] = 0.3  // 21
	d[5] = 0.25 // 22
	d[9] = 0.15 // 26

	assert.Equal(t, 0.1, d.At(17))
	assert.Equal(t, 0.15, d.At(26))
	assert.Equal(t, 0.0, d.At(16))
	assert.Equal(t, 0.0, d.At(27))
	assert.InDelta(t, 0.4, d.Bust(), 1e-15)
	assert.InDelta(t, 1.0, d.Sum(), 1e-15)

	// 19 beats 17 and 18 and busts, loses to 21
	assert.InDelta(t, 0.4+0.1+0.2-0.3, d.versus(19), 1e-15)
	// 18 ties 18
	assert.InDelta(t, 0.4+0.1-0.3, d.versus(18), 1e-15)
	// Anything under 17 only wins on a dealer bust
	assert.InDelta(t, 0.4-0.6, d.versus(12), 1e-15)
	assert.Equal(t, lossProfit, d.versus(22))
}

// bruteDealer walks every card sequence the dealer can draw, totalling hands the usual way
// (one Ace counts 11 when that does not bust), and accumulates the weight of each final total.
// Two-card naturals are recorded separately.
func bruteDealer(counts [numRanks]int, cards []int, weight float64, totals map[int]float64, natural *float64) {
	total, aces := 0, 0
	for _, c := range cards {
		total += c
		if c == Ace {
			aces++
		}
	}
	if aces > 0 && total+10 <= 21 {
		total += 10
	}
	if len(cards) == 2 && total == 21 {
		*natural += weight
		return
	}
	if total >= 17 {
		totals[total] += weight
		return
	}

	size := 0
	for _, n := range counts {
		size += n
	}
	for rank := Ace; rank <= Ten; rank++ {
		n := counts[rank-1]
		if n == 0 {
			continue
		}
		next := counts
		next[rank-1]--
		bruteDealer(next, append(append([]int(nil), cards...), rank), weight*float64(n)/float64(size), totals, natural)
	}
}

// The engine conditions the hole card once on "no natural"; the brute force conditions the
// whole enumeration after the fact. Both must agree.
func TestFiniteDistributionMatchesBruteForce(t *testing.T) {
	hands := [][2]int{{Nine, Eight}, {Ten, Six}, {Ace, Ace}, {Two, Three}}
	for up := Ace; up <= Ten; up++ {
		for _, hand := range hands {
			f, err := NewFinite(up, hand[0], hand[1], 1)
			require.NoError(t, err)

			totals := map[int]float64{}
			natural := 0.0
			bruteDealer(f.Shoe().Counts(), []int{up}, 1, totals, &natural)
			if naturalComplement(up) == 0 {
				assert.Equal(t, 0.0, natural)
			}

			dist := f.DealerDistribution()
			for total := DealerStandsOn; total <= MaxDealerTotal; total++ {
				want := totals[total] / (1 - natural)
				assert.InDelta(t, want, dist.At(total), 1e-12, "up=%d hand=%v total=%d", up, hand, total)
			}
		}
	}
}

func TestFiniteDistributionWithoutPeekCountsNaturals(t *testing.T) {
	f, err := NewFiniteWithRules(Ten, Nine, Eight, 1, Rules{SoftDealerAces: true})
	require.NoError(t, err)

	totals := map[int]float64{}
	natural := 0.0
	bruteDealer(f.Shoe().Counts(), []int{Ten}, 1, totals, &natural)

	dist := f.DealerDistribution()
	assert.InDelta(t, totals[21]+natural, dist.At(21), 1e-12)
	assert.InDelta(t, totals[20], dist.At(20), 1e-12)
	assert.InDelta(t, 1.0, dist.Sum(), 1e-12)
}

func TestProbabilityConservation(t *testing.T) {
	for _, nDecks := range []int{1, 6} {
		for _, rules := range []Rules{DefaultRules(), {}, {DealerPeeks: true}} {
			for up := Ace; up <= Ten; up++ {
				f, err := NewFiniteWithRules(up, Ten, Seven, nDecks, rules)
				require.NoError(t, err)
				sum := 0.0
				for target := DealerStandsOn; target <= MaxDealerTotal; target++ {
					sum += f.ProbabilityDealer(target, up)
				}
				assert.InDelta(t, 1.0, sum, 1e-9, "decks=%d rules=%+v up=%d", nDecks, rules, up)
			}
		}
	}

	inf, err := NewInfinite(Ten, Ten, Seven)
	require.NoError(t, err)
	for value := 2; value <= 16; value++ {
		for _, soft := range []bool{false, true} {
			if soft && value < 11 {
				continue
			}
			sum := 0.0
			for target := DealerStandsOn; target <= MaxDealerTotal; target++ {
				sum += inf.ProbabilityDealer(target, value, soft)
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "value=%d soft=%v", value, soft)
		}
	}
}

func TestDealerRecursionRestoresShoe(t *testing.T) {
	f, err := NewFinite(Two, Ten, Four, 1)
	require.NoError(t, err)
	before := f.Shoe().Counts()

	f.DealerDistribution()
	f.ProbabilityDealer(22, 5)
	assert.Equal(t, before, f.Shoe().Counts())
	assert.Equal(t, 49, f.Shoe().Size())
}

func TestStandingDealerValue(t *testing.T) {
	f, err := NewFinite(Six, Ten, Four, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.ProbabilityDealer(18, 18))
	assert.Equal(t, 0.0, f.ProbabilityDealer(19, 18))

	inf, err := NewInfinite(Six, Ten, Four)
	require.NoError(t, err)
	assert.Equal(t, 1.0, inf.ProbabilityDealer(17, 17, true))
}

func TestOutOfRangeTargets(t *testing.T) {
	f, err := NewFinite(Six, Ten, Four, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.ProbabilityDealer(16, Six))
	assert.Equal(t, 0.0, f.ProbabilityDealer(27, Six))
	assert.Equal(t, 0.0, f.ProbabilityDealer(12, Six))
}

func TestInfiniteDistributionPinned(t *testing.T) {
	inf, err := NewInfinite(Six, Ten, Seven)
	require.NoError(t, err)
	want := []float64{
		0.1654381765033464, 0.1062665788702103, 0.1062665788702103, 0.10171491751381523,
		0.09716325615742014, 0.08700955005469263, 0.08097657878941159, 0.07447953281141659,
		0.06748271406588352, 0.11320211636359348,
	}
	dist := inf.DealerDistribution()
	for i, p := range want {
		assert.InDelta(t, p, dist[i], 1e-12, "total=%d", DealerStandsOn+i)
	}
}
