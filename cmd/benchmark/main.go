package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/cascadelabs/cascade"
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
)

var (
	ww    = []int{1, 10, 100}
	hh    = []int{1, 10, 100}
	iters = 100
)

func addOne(v int) int {
	return v + 1
}

func pass(int) {}

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")
	benchmarkPropagation(false)

	benchmarkPropagation(true)
	benchmarkThroughput()
}

// wide * deep grid of chains hanging off one source; every write floods the
// whole graph.
func benchmarkPropagation(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Cascade")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	digest := xxhash.New()
	var buf [8]byte

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			g := cascade.New()
			src := cascade.Source(g, 1)
			leaves := make([]cascade.Handle[int], 0, w)
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					prev := last
					next, err := cascade.Computed1(g, prev, addOne)
					if err != nil {
						log.Fatal(err)
					}
					last = next
				}
				if _, err := cascade.Effect1(g, last, pass); err != nil {
					log.Fatal(err)
				}
				leaves = append(leaves, last)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.Set(src.Value() + 1); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
			}

			// fold the leaf values in so the writes cannot be elided
			for _, leaf := range leaves {
				binary.LittleEndian.PutUint64(buf[:], uint64(leaf.Value()))
				digest.Write(buf[:])
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
		log.Printf("digest: %x", digest.Sum64())
	}
}

// total write throughput per grid shape, best of a few repeats.
func benchmarkThroughput() {
	type shape struct {
		name string
		w, h int
	}
	shapes := []shape{
		{"narrow deep", 1, 500},
		{"wide shallow", 500, 1},
		{"square", 50, 50},
	}
	const writes = 1_000
	const repeats = 3

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"test", "size", "writes", "time", "updateRate"})

	for _, s := range shapes {
		log.Printf("Running '%s' shape", s.name)

		g := cascade.New()
		src := cascade.Source(g, 1)
		for i := 0; i < s.w; i++ {
			last := src
			for j := 0; j < s.h; j++ {
				prev := last
				next, err := cascade.Computed1(g, prev, addOne)
				if err != nil {
					log.Fatal(err)
				}
				last = next
			}
		}

		best := time.Hour
		for r := 0; r < repeats; r++ {
			start := time.Now()
			for i := 0; i < writes; i++ {
				if err := src.Set(src.Value() + 1); err != nil {
					log.Fatal(err)
				}
			}
			if d := time.Since(start); d < best {
				best = d
			}
		}

		updates := int64(writes) * int64(s.w) * int64(s.h)
		rate := float64(updates) / (float64(best) / float64(time.Millisecond))
		tbl.Append([]string{
			s.name,
			fmt.Sprintf("%dx%d", s.w, s.h),
			humanize.Comma(writes),
			fmt.Sprint(best),
			humanize.Comma(int64(rate)),
		})
	}
	tbl.Render()
}
