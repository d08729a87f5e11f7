package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/specialistvlad/puzzlegrid/internal/ctxlog"
	"github.com/specialistvlad/puzzlegrid/internal/inputs"
	"github.com/specialistvlad/puzzlegrid/internal/manifest"
	"github.com/specialistvlad/puzzlegrid/internal/registry"
)

// job is one puzzle scheduled for a run.
type job struct {
	name   string
	puzzle *registry.Puzzle
	input  string // file path; empty means the embedded sample
	expect *manifest.Expect
}

// Result holds both answers of one puzzle.
type Result struct {
	Puzzle string
	Part1  int
	Part2  int
}

func (r Result) get(part int) int {
	if part == 2 {
		return r.Part2
	}
	return r.Part1
}

// Run solves every selected puzzle in order and writes the answers. A failure
// to load or parse an input aborts the run at once. Expectation mismatches
// are collected and returned together once every puzzle has run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	jobs, err := a.plan(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		a.logger.Warn("No puzzles selected, nothing to run.")
		return nil
	}

	var mismatches []error
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := a.Solve(ctx, j.name, j.input)
		if err != nil {
			return err
		}
		if err := a.report(res, j.puzzle, len(jobs) > 1); err != nil {
			return fmt.Errorf("failed to write answers: %w", err)
		}
		mismatches = append(mismatches, a.check(ctx, j, res)...)
	}

	a.logger.Debug("App.Run method finished.", "puzzles", len(jobs))
	return errors.Join(mismatches...)
}

// plan turns the configuration into the ordered list of jobs to run.
func (a *App) plan(ctx context.Context) ([]job, error) {
	if a.config.ManifestPath != "" {
		m, err := manifest.Load(ctx, a.config.ManifestPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest: %w", err)
		}
		var jobs []job
		for _, e := range m.Enabled() {
			p, err := a.lookup(e.Name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", e.Source, err)
			}
			jobs = append(jobs, job{name: e.Name, puzzle: p, input: e.Input, expect: e.Expect})
		}
		return jobs, nil
	}

	names := a.config.Puzzles
	if len(names) == 0 {
		names = a.registry.Names()
	}
	jobs := make([]job, 0, len(names))
	for _, n := range names {
		p, err := a.lookup(n)
		if err != nil {
			return nil, err
		}
		j := job{name: registry.Normalize(n), puzzle: p, input: a.config.InputPath}
		if a.config.Sample {
			if want, ok := inputs.Expected(j.name); ok {
				j.expect = &manifest.Expect{Part1: &want.Part1, Part2: &want.Part2}
			}
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func (a *App) lookup(name string) (*registry.Puzzle, error) {
	p, ok := a.registry.Lookup(name)
	if !ok {
		return nil, &UnknownPuzzleError{Name: name, Known: a.registry.Names()}
	}
	return p, nil
}

// Solve runs both parts of the named puzzle. inputPath names the input file;
// an empty path selects the embedded sample for each part.
func (a *App) Solve(ctx context.Context, name, inputPath string) (Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	p, err := a.lookup(name)
	if err != nil {
		return Result{}, err
	}
	name = registry.Normalize(name)
	logger := a.logger.With("puzzle", name)

	var fileInput string
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return Result{}, fmt.Errorf("%s: failed to read input: %w", name, err)
		}
		fileInput = string(data)
		logger.Debug("Input loaded from file.", "path", inputPath, "bytes", len(data))
	}

	res := Result{Puzzle: name}
	for part := 1; part <= 2; part++ {
		input := fileInput
		if inputPath == "" {
			input, err = inputs.Sample(name, part)
			if err != nil {
				return Result{}, err
			}
		}

		answer, err := p.Part(part)(ctx, input)
		if err != nil {
			return Result{}, fmt.Errorf("%s part %d: %w", name, part, err)
		}
		if part == 1 {
			res.Part1 = answer
		} else {
			res.Part2 = answer
		}
	}

	logger.Info("Puzzle solved.", "part1", res.Part1, "part2", res.Part2)
	return res, nil
}

func (a *App) report(res Result, p *registry.Puzzle, withHeader bool) error {
	if withHeader {
		if _, err := fmt.Fprintf(a.outW, "== %s: %s ==\n", res.Puzzle, p.Title); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(a.outW, "Part 1: %d\nPart 2: %d\n", res.Part1, res.Part2)
	return err
}

func (a *App) check(ctx context.Context, j job, res Result) []error {
	logger := ctxlog.FromContext(ctx)
	var errs []error
	for part := 1; part <= 2; part++ {
		want, ok := j.expect.Get(part)
		if !ok {
			continue
		}
		if got := res.get(part); got != want {
			logger.Error("Answer does not match expectation.", "puzzle", j.name, "part", part, "got", got, "want", want)
			errs = append(errs, &AnswerMismatchError{Puzzle: j.name, Part: part, Got: got, Want: want})
			continue
		}
		logger.Debug("Answer verified.", "puzzle", j.name, "part", part)
	}
	return errs
}
