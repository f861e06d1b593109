package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/mpmedia/js-signals/signals"
)

type benchmarkTestConfig struct {
	name      string // friendly name for the test, should be unique
	nSources  int64  // number of source signals joined by the compound
	listeners int64  // listeners attached to the compound itself
	rounds    int64  // full source rounds per run
}

func main() {
	log.Print("Starting compound join benchmark, please wait...")
	defer log.Print("Finished compound join benchmark")

	perfTestCfgs := []benchmarkTestConfig{
		{name: "pair", nSources: 2, listeners: 1, rounds: 200_000},
		{name: "quad", nSources: 4, listeners: 1, rounds: 100_000},
		{name: "fan-in", nSources: 16, listeners: 1, rounds: 25_000},
		{name: "fan-in fan-out", nSources: 16, listeners: 100, rounds: 10_000},
		{name: "wide", nSources: 64, listeners: 10, rounds: 5_000},
	}

	type results struct {
		fires    int64
		duration time.Duration
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "nSources", "listeners", "rounds", "time", "fires", "roundRate",
	})

	testRepeats := 5
	for _, cfg := range perfTestCfgs {
		log.Printf("Running '%s' config", cfg.name)

		runOnce := func() (int64, time.Duration) {
			sources := make([]*signals.Signal, cfg.nSources)
			for i := range sources {
				sources[i] = signals.New()
			}
			compound, err := signals.NewCompound(sources, signals.WithRepeat())
			if err != nil {
				log.Fatal(err)
			}

			fires := int64(0)
			for i := int64(0); i < cfg.listeners; i++ {
				if _, err := compound.Add(signals.NewListener(func(args ...any) any {
					fires++
					return nil
				})); err != nil {
					log.Fatal(err)
				}
			}

			start := time.Now()
			for round := int64(0); round < cfg.rounds; round++ {
				for _, src := range sources {
					if err := src.Dispatch(round); err != nil {
						log.Fatal(err)
					}
				}
			}
			return fires, time.Since(start)
		}

		// run once to warm up
		runOnce()

		bestResult := &results{duration: time.Hour}
		for i := 0; i < testRepeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, testRepeats)
			fires, duration := runOnce()
			if fires != cfg.rounds*cfg.listeners {
				log.Fatalf("expected %d fires, got %d", cfg.rounds*cfg.listeners, fires)
			}
			if duration < bestResult.duration {
				bestResult.duration = duration
				bestResult.fires = fires
			}
		}

		roundRate := float64(cfg.rounds) / (float64(bestResult.duration) / float64(time.Second))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.nSources),
			fmt.Sprint(cfg.listeners),
			humanize.Comma(cfg.rounds),
			fmt.Sprint(bestResult.duration),
			humanize.Comma(bestResult.fires),
			humanize.Comma(int64(roundRate)),
		})
	}
	table.Render() // Send output
}
