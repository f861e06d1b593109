package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mpmedia/js-signals/signals"
)

var (
	listenerCounts = []int{1, 10, 100, 1_000}
	priorityBands  = []int{1, 10}
	iters          = 1_000
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkDispatch(false)

	benchmarkDispatch(true)
	benchmarkMemorize(true)
}

// each listener folds the payload into a digest so the work is observable
// and nothing gets optimized away
func benchmarkDispatch(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Signal Dispatch")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max", "checksum"})

	for _, count := range listenerCounts {
		for _, bands := range priorityBands {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sig := signals.New()
			digest := xxhash.New()
			for i := 0; i < count; i++ {
				priority := i % bands
				if _, err := sig.Add(signals.NewListener(func(args ...any) any {
					digest.WriteString(args[0].(string))
					return nil
				}), signals.WithPriority(priority)); err != nil {
					log.Panic(err)
				}
			}

			for i := 0; i < iters; i++ {
				payload := strconv.Itoa(i)
				start := time.Now()
				if err := sig.Dispatch(payload); err != nil {
					log.Panic(err)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("dispatch: %d listeners, %d priorities", count, bands),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
					fmt.Sprintf("%016x", digest.Sum64()),
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// attach/detach against a memorizing signal: every add replays the last
// dispatch before the once binding detaches itself
func benchmarkMemorize(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Memorize Replay")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, count := range listenerCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sig := signals.New(signals.WithMemorize())
		if err := sig.Dispatch("remembered"); err != nil {
			log.Panic(err)
		}
		digest := xxhash.New()

		for i := 0; i < iters; i++ {
			start := time.Now()
			for j := 0; j < count; j++ {
				if _, err := sig.AddOnce(signals.NewListener(func(args ...any) any {
					digest.WriteString(args[0].(string))
					return nil
				})); err != nil {
					log.Panic(err)
				}
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("replay: %d late listeners", count),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
