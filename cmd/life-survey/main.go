package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"life-ca/pkg/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	base := life.DefaultConfig()
	base.Width, base.Height = 64, 64
	var patterns kvList
	flag.Var(&patterns, "pattern", `pattern file to survey, or "default" (repeatable)`)
	soups := flag.Int("soups", 0, "number of random soups to survey")
	flag.IntVar(&base.Width, "w", base.Width, "soup width")
	flag.IntVar(&base.Height, "h", base.Height, "soup height")
	flag.Float64Var(&base.Density, "density", base.Density, "soup initial alive probability")
	flag.Int64Var(&base.Seed, "seed", base.Seed, "seed of the first soup; later soups use consecutive seeds")
	generations := flag.Int("generations", 200, "generations to simulate per job")
	every := flag.Int("every", 50, "record a checkpoint every N generations")
	workers := flag.Int("workers", runtime.NumCPU(), "jobs simulated in parallel")
	out := flag.String("out", "", "directory for the final grid of each job")
	flag.Parse()

	jobs := buildJobs(patterns, *soups, base)
	if len(jobs) == 0 {
		jobs = buildJobs([]string{life.PatternDefault}, 0, base)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("surveying %d jobs (%d workers, %d generations)", len(jobs), *workers, *generations)
	results, err := runSurvey(ctx, jobs, surveyOptions{Generations: *generations, Every: *every, Workers: *workers})
	if err != nil {
		log.Fatalf("survey: %v", err)
	}
	printResults(os.Stdout, results)

	if *out != "" {
		if err := writeFinals(*out, results); err != nil {
			log.Fatalf("write final grids: %v", err)
		}
	}
}
