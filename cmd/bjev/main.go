package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	blackjack "github.com/brisalchert/blackjack-expected-value"
)

func main() {
	// A missing .env is fine; flags and the process environment still apply.
	_ = godotenv.Load()

	up := flag.Int("up", blackjack.Ten, "Dealer up-card (1 = Ace, 10 = any ten-valued card)")
	hand := flag.String("hand", "9,8", "Player's two cards, comma separated")
	nDecks := flag.Int("decks", envInt("BJEV_DECKS", 6), "Number of decks in the shoe")
	infinite := flag.Bool("infinite", false, "Use an infinite deck instead of a shoe")
	noPeek := flag.Bool("no-peek", false, "Dealer does not check for a natural")
	hardDealer := flag.Bool("hard-dealer", false, "Dealer counts every Ace as 1")
	scenarioFile := flag.String("scenarios", "", "JSON file holding an array of scenarios")
	table := flag.Bool("table", false, "Evaluate every pair against every up-card")
	out := flag.String("out", getEnv("BJEV_OUT", "results.json"), "Output file for -table")
	workers := flag.Int("workers", envInt("BJEV_WORKERS", runtime.NumCPU()), "Concurrent evaluations")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	rules := blackjack.Rules{DealerPeeks: !*noPeek, SoftDealerAces: !*hardDealer}

	switch {
	case *table:
		scenarios := blackjack.AllScenarios(*nDecks, *infinite)
		for i := range scenarios {
			scenarios[i].Rules = &rules
		}
		results, err := evaluateAll(scenarios, *workers, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("table failed")
		}
		report := newTableReport(*nDecks, *infinite, results)
		if err := writeJSON(*out, report); err != nil {
			logger.Fatal().Err(err).Str("out", *out).Msg("write failed")
		}
		logger.Info().
			Int("scenarios", len(results)).
			Float64("averageBest", report.AverageBest).
			Str("out", *out).
			Msg("table written")

	case *scenarioFile != "":
		scenarios, err := readScenarios(*scenarioFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", *scenarioFile).Msg("read scenarios failed")
		}
		for i := range scenarios {
			if !scenarios[i].Infinite && scenarios[i].Decks == 0 {
				scenarios[i].Decks = *nDecks
			}
			if scenarios[i].Rules == nil {
				scenarios[i].Rules = &rules
			}
		}
		results, err := evaluateAll(scenarios, *workers, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("evaluation failed")
		}
		if err := writeJSON("", results); err != nil {
			logger.Fatal().Err(err).Msg("write failed")
		}

	default:
		cards, err := parseHand(*hand)
		if err != nil {
			logger.Fatal().Err(err).Str("hand", *hand).Msg("bad hand")
		}
		s := blackjack.Scenario{Up: *up, Cards: cards, Decks: *nDecks, Infinite: *infinite, Rules: &rules}
		res, err := s.Evaluate()
		if err != nil {
			logger.Fatal().Err(err).Msg("evaluation failed")
		}
		fmt.Printf("Up Card:\t%d\n", s.Up)
		fmt.Printf("Hand:\t\t%d, %d\n", cards[0], cards[1])
		fmt.Printf("Hit:\t\t%.6f\n", res.Hit)
		fmt.Printf("Stand:\t\t%.6f\n", res.Stand)
	}
}

func parseHand(s string) ([2]int, error) {
	var cards [2]int
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return cards, fmt.Errorf("want two cards, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return cards, fmt.Errorf("card %q: %w", p, err)
		}
		cards[i] = v
	}
	return cards, nil
}

func readScenarios(path string) ([]blackjack.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []blackjack.Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return scenarios, nil
}

// writeJSON writes v to path, or to stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
