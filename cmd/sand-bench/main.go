// Command sand-bench runs the sand simulation headless for a batch of seeds
// in parallel and reports the element census and throughput of each run.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"mad-sand/internal/core"
	"mad-sand/internal/sims/sand"
)

// benchSim is what a registered simulation must offer to run the scene.
type benchSim interface {
	core.Sim
	Paint(cx, cy int, e sand.Element, brushPx int)
	Census() sand.Census
}

type runResult struct {
	seed    int64
	census  sand.Census
	ticks   int
	elapsed time.Duration
	err     error
}

func main() {
	ticks := flag.Int("ticks", 600, "ticks to simulate per seed")
	seeds := flag.Int("seeds", 8, "number of seeds, starting at -seed")
	firstSeed := flag.Int64("seed", 1, "first seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 160, "grid width in cells")
	height := flag.Int("h", 120, "grid height in cells")
	configPath := flag.String("config", "", "YAML tuning file")
	simName := flag.String("sim", "sand", "registered simulation to run")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	factory, ok := core.Lookup(*simName)
	if !ok {
		slog.Error("unknown simulation", "sim", *simName, "available", strings.Join(core.Names(), ", "))
		os.Exit(2)
	}

	base := sand.DefaultConfig()
	if *configPath != "" {
		loaded, err := sand.LoadConfig(*configPath)
		if err != nil {
			slog.Error("failed to load tuning", "path", *configPath, "error", err)
			os.Exit(1)
		}
		base = loaded
	}
	base.Width, base.Height = *width, *height
	params := base.Map()

	fmt.Printf("Running %s: %d seeds (%d workers, %s ticks, %dx%d)\n",
		*simName, *seeds, *workers, humanize.Comma(int64(*ticks)), *width, *height)

	jobs := make(chan int64)
	results := make(chan runResult)
	var wg sync.WaitGroup

	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(factory, params, seed, *ticks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *seeds; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []runResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })

	failed := false
	for _, res := range all {
		if res.err != nil {
			fmt.Printf("seed %d: %v\n", res.seed, res.err)
			failed = true
			continue
		}
		rate := float64(res.ticks) / res.elapsed.Seconds()
		fmt.Printf("seed %d: %s in %s\n", res.seed, humanize.SIWithDigits(rate, 1, "tick/s"), res.elapsed.Round(time.Millisecond))
		for _, line := range censusLines(res.census) {
			fmt.Println("   ", line)
		}
	}
	fmt.Printf("Finished in %s\n", time.Since(start).Round(time.Millisecond))
	if failed {
		os.Exit(1)
	}
}

func runSeed(factory core.Factory, params map[string]string, seed int64, ticks int) runResult {
	cfg := maps.Clone(params)
	if cfg == nil {
		cfg = map[string]string{}
	}
	cfg["seed"] = strconv.FormatInt(seed, 10)
	sim, err := factory(cfg)
	if err != nil {
		return runResult{seed: seed, err: err}
	}
	world, ok := sim.(benchSim)
	if !ok {
		return runResult{seed: seed, err: fmt.Errorf("%s cannot stage the bench scene", sim.Name())}
	}
	stageScene(world)
	start := time.Now()
	for i := 0; i < ticks; i++ {
		world.Step()
	}
	return runResult{seed: seed, census: world.Census(), ticks: ticks, elapsed: time.Since(start)}
}

// censusLines lists the non-empty elements, most common first.
func censusLines(c sand.Census) []string {
	type entry struct {
		e sand.Element
		n int
	}
	var entries []entry
	for i := 1; i < sand.NumElements; i++ {
		e := sand.Element(i)
		if n := c.Count(e); n > 0 {
			entries = append(entries, entry{e, n})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].n > entries[j].n })
	lines := make([]string, len(entries))
	for i, en := range entries {
		lines[i] = fmt.Sprintf("%-14s %s", en.e, humanize.Comma(int64(en.n)))
	}
	return lines
}
