package main

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/sortx"
)

// benchSorts enumerates the algorithms the bench command races. Keep the
// comparison sorts first so the table reads general → specialized.
var benchSorts = []struct {
	name string
	fn   func([]int)
}{
	{"Quick", sortx.Quick[int]},
	{"Merge", sortx.Merge[int]},
	{"Heap", sortx.Heap[int]},
	{"Shell", sortx.Shell[int]},
	{"Insertion", sortx.Insertion[int]},
	{"Counting", sortx.Counting},
	{"Radix", sortx.Radix},
	{"stdlib", sort.Ints},
}

func newBenchCmd() *cobra.Command {
	var (
		size int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the sorting algorithms against each other",
		Long: `bench sorts the same random permutation with every sortx algorithm
and prints the wall-clock time per algorithm. Each run gets its own copy
of the input, so the algorithms never see each other's output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, size, seed)
		},
	}
	cmd.Flags().IntVar(&size, "size", 50_000, "number of elements to sort")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the input permutation")

	return cmd
}

func runBench(cmd *cobra.Command, size int, seed int64) error {
	if size <= 0 {
		return fmt.Errorf("bench: size must be positive, got %d", size)
	}

	log := newLogger()
	out := cmd.OutOrStdout()

	log.Debug().Int("size", size).Int64("seed", seed).Msg("generating input")
	r := rand.New(rand.NewSource(seed))
	input := make([]int, size)
	for i := range input {
		input[i] = r.Intn(size * 10)
	}

	fmt.Fprintln(out, titleStyle.Render(
		fmt.Sprintf("sorting %d random ints", size)))

	bar := progressbar.NewOptions(len(benchSorts),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionClearOnFinish(),
	)

	type result struct {
		name    string
		elapsed time.Duration
	}
	results := make([]result, 0, len(benchSorts))

	for _, bench := range benchSorts {
		data := make([]int, len(input))
		copy(data, input)

		start := time.Now()
		bench.fn(data)
		elapsed := time.Since(start)

		if !sort.IntsAreSorted(data) {
			return fmt.Errorf("bench: %s produced unsorted output", bench.name)
		}

		log.Debug().Str("sort", bench.name).Dur("elapsed", elapsed).Msg("run done")
		results = append(results, result{bench.name, elapsed})
		_ = bar.Add(1)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].elapsed < results[j].elapsed
	})
	for rank, res := range results {
		fmt.Fprintf(out, "%s %-10s %v\n",
			resultStyle.Render(fmt.Sprintf("%2d.", rank+1)), res.name, res.elapsed)
	}

	return nil
}
