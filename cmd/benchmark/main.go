package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
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

	benchmarkSyncFlush(true)
	benchmarkBatchedFlush(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func addOne(oldValue int) int {
	return oldValue + 1
}
func pass(l int) error {
	return nil
}

// buildPropagationGrid wires w independent chains of h computeds off one
// source key, each chain terminated by a watcher.
func buildPropagationGrid(rt *reactive.Runtime, w, h int) *reactive.Map {
	src := reactive.NewMap(rt, map[string]any{"n": 1})
	for i := 0; i < w; i++ {
		last := func() int { return src.Get("n").(int) }
		for j := 0; j < h; j++ {
			prev := last
			last = reactive.Computed1(rt, prev, addOne)
		}
		reactive.Watch1(rt, last, pass)
	}
	return src
}

func benchmarkSyncFlush(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Sync Flush")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := reactive.NewRuntime(reactive.WithSynchronous())
			src := buildPropagationGrid(rt, w, h)

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set("n", src.Get("n").(int)+1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkBatchedFlush(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Batched Flush")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := reactive.NewRuntime()
			src := buildPropagationGrid(rt, w, h)
			rt.Tick()

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set("n", src.Get("n").(int)+1)
				rt.Tick()
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
