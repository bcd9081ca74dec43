package main

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	blackjack "github.com/brisalchert/blackjack-expected-value"
)

type tableRow struct {
	blackjack.Result
	Best      float64 `json:"best"`
	Frequency float64 `json:"frequency"`
}

type tableReport struct {
	Decks       int        `json:"decks,omitempty"`
	Infinite    bool       `json:"infinite,omitempty"`
	AverageBest float64    `json:"averageBest"`
	Rows        []tableRow `json:"rows"`
}

func newTableReport(nDecks int, infinite bool, results []blackjack.Result) tableReport {
	report := tableReport{Infinite: infinite, Rows: make([]tableRow, 0, len(results))}
	if !infinite {
		report.Decks = nDecks
	}
	for _, res := range results {
		row := tableRow{Result: res, Best: res.Best(), Frequency: res.Scenario.Frequency()}
		report.AverageBest += row.Best * row.Frequency
		report.Rows = append(report.Rows, row)
	}
	return report
}

// evaluateAll evaluates every scenario with at most workers running at once. Each scenario
// builds its own engine, so nothing is shared between goroutines except the result slots.
func evaluateAll(scenarios []blackjack.Scenario, workers int, logger zerolog.Logger) ([]blackjack.Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]blackjack.Result, len(scenarios))
	errs := make([]error, len(scenarios))
	sem := make(chan struct{}, workers)
	var completed int32

	var wg sync.WaitGroup
	wg.Add(len(scenarios))
	for i, s := range scenarios {
		i, s := i, s
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			results[i], errs[i] = s.Evaluate()

			done := atomic.AddInt32(&completed, 1)
			logger.Debug().
				Int32("completed", done).
				Int("total", len(scenarios)).
				Str("scenario", s.String()).
				Msg("evaluated")
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
