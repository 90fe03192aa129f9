package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"life-ca/internal/core"
	"life-ca/internal/pattern"
	"life-ca/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

// job is one independent simulation run.
type job struct {
	Name string
	Cfg  life.Config
}

// checkpoint records the population at one generation.
type checkpoint struct {
	Generation  int
	Alive       int
	Communities int
	Largest     int
}

type result struct {
	Job         job
	Checkpoints []checkpoint
	// Extinct is the first generation with no alive cells, or -1.
	Extinct int
	Final   *core.Grid
}

type surveyOptions struct {
	Generations int
	Every       int
	Workers     int
}

// buildJobs lists one job per pattern followed by soups random soups with
// consecutive seeds. Job names are unique; a repeated name gets the job's
// index appended.
func buildJobs(patterns []string, soups int, base life.Config) []job {
	var jobs []job
	used := make(map[string]bool)
	add := func(name string, cfg life.Config) {
		if used[name] {
			name = fmt.Sprintf("%s-%d", name, len(jobs))
			for used[name] {
				name += "_"
			}
		}
		used[name] = true
		jobs = append(jobs, job{Name: name, Cfg: cfg})
	}
	for _, p := range patterns {
		cfg := base
		cfg.Pattern = p
		name := p
		if p != life.PatternDefault {
			name = strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		}
		add(name, cfg)
	}
	for i := 0; i < soups; i++ {
		cfg := base
		cfg.Pattern = ""
		cfg.Seed = base.Seed + int64(i)
		add(fmt.Sprintf("soup-%d", cfg.Seed), cfg)
	}
	return jobs
}

// runSurvey runs every job, at most opts.Workers at a time, and returns the
// results in job order. The first failing job cancels the rest.
func runSurvey(ctx context.Context, jobs []job, opts surveyOptions) ([]result, error) {
	results := make([]result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, j := range jobs {
		g.Go(func() error {
			res, err := runJob(ctx, j, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", j.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runJob(ctx context.Context, j job, opts surveyOptions) (result, error) {
	sim, err := life.NewWithConfig(j.Cfg)
	if err != nil {
		return result{}, err
	}
	every := opts.Every
	if every <= 0 {
		every = max(opts.Generations, 1)
	}
	res := result{Job: j, Extinct: -1}
	record := func() {
		largest := 0
		communities := sim.CommunitySizes()
		for _, size := range communities {
			largest = max(largest, size)
		}
		res.Checkpoints = append(res.Checkpoints, checkpoint{
			Generation:  sim.Generation(),
			Alive:       sim.TotalAliveCells(),
			Communities: len(communities),
			Largest:     largest,
		})
	}

	record()
	for sim.Generation() < opts.Generations && sim.IsAlive() {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		sim.NextGeneration()
		gen := sim.Generation()
		if gen%every == 0 || gen == opts.Generations || !sim.IsAlive() {
			record()
		}
	}
	if !sim.IsAlive() {
		res.Extinct = sim.Generation()
	}
	res.Final = sim.Grid()
	return res, nil
}

func printResults(w io.Writer, results []result) {
	for _, res := range results {
		size := res.Final.Size()
		fmt.Fprintf(w, "%s (%dx%d)\n", res.Job.Name, size.W, size.H)
		fmt.Fprintf(w, "  %10s %8s %12s %8s\n", "generation", "alive", "communities", "largest")
		for _, cp := range res.Checkpoints {
			fmt.Fprintf(w, "  %10d %8d %12d %8d\n", cp.Generation, cp.Alive, cp.Communities, cp.Largest)
		}
		if res.Extinct >= 0 {
			fmt.Fprintf(w, "  extinct at generation %d\n", res.Extinct)
		}
	}
}

// writeFinals stores each final grid as <dir>/<name>.txt in pattern format.
func writeFinals(dir string, results []result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, res := range results {
		path := filepath.Join(dir, res.Job.Name+".txt")
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := pattern.Encode(f, res.Final); err != nil {
			f.Close()
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}
