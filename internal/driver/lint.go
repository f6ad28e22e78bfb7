// Package driver runs the lint pipeline: load and tokenize a file, run the
// applicable checks, collect diagnostics. Directory runs fan out over a
// worker pool and consult a content-addressed disk cache.
package driver

import (
	"context"
	"fmt"

	"flint/internal/check"
	"flint/internal/config"
	"flint/internal/diag"
	"flint/internal/fileclass"
	"flint/internal/lexer"
	"flint/internal/observ"
	"flint/internal/source"
	"flint/internal/token"
)

// Options carries the shared settings of a lint run.
type Options struct {
	Config         config.Config
	MaxDiagnostics int
	Jobs           int        // parallel workers for directory runs; 0 = GOMAXPROCS
	Cache          *DiskCache // nil disables caching
	Events         EventSink  // nil disables progress events
	Timer          *observ.Timer
}

// LintResult is the outcome for one file.
type LintResult struct {
	Path     string
	FileID   source.FileID
	Category fileclass.Category
	Bag      *diag.Bag
	Findings int
	Cached   bool
}

// LintFile lints one on-disk file into the FileSet.
func LintFile(ctx context.Context, fileSet *source.FileSet, path string, opts Options) (LintResult, error) {
	if err := ctx.Err(); err != nil {
		return LintResult{}, err
	}
	id, err := fileSet.Load(path)
	if err != nil {
		return LintResult{}, fmt.Errorf("load %s: %w", path, err)
	}
	return lintLoaded(fileSet, id, path, opts, nil), nil
}

// LintSource lints in-memory content under the given name, for stdin and
// tests.
func LintSource(fileSet *source.FileSet, name string, content []byte, opts Options) LintResult {
	id := fileSet.AddVirtual(name, content)
	return lintLoaded(fileSet, id, name, opts, nil)
}

// lintLoaded runs the lex and check phases over an already-loaded file.
// progress, when non-nil, is told as each phase starts.
func lintLoaded(fileSet *source.FileSet, id source.FileID, path string, opts Options, progress func(Stage)) LintResult {
	report := func(s Stage) {
		if progress != nil {
			progress(s)
		}
	}
	file := fileSet.Get(id)
	category := fileclass.Classify(path)

	res := LintResult{
		Path:     path,
		FileID:   id,
		Category: category,
		Bag:      diag.NewBag(opts.MaxDiagnostics),
	}

	key := cacheKey(file.Hash, opts.Config)
	if opts.Cache != nil {
		if payload, ok := opts.Cache.Load(key); ok {
			replayPayload(payload, id, res.Bag)
			res.Findings = payload.Findings
			res.Cached = true
			res.Bag.Sort()
			return res
		}
	}

	// checks may flag the same span twice; duplicates stop at the sink
	sink := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})

	report(StageLexing)
	var phase int
	if opts.Timer != nil {
		phase = opts.Timer.Begin("lex " + path)
	}
	lexReporter := &diag.CountingReporter{Next: sink}
	lx := lexer.New(file, lexer.Options{Reporter: lexReporter})
	toks := lx.ScanAll()
	if opts.Timer != nil {
		opts.Timer.End(phase, fmt.Sprintf("%d tokens, %d diagnostics", len(toks), lexReporter.Count))
	}

	report(StageChecking)
	if opts.Timer != nil {
		phase = opts.Timer.Begin("check " + path)
	}
	cctx := &check.Context{
		File:     file,
		Category: category,
		Tokens:   toks,
		Config:   opts.Config,
		Sink:     sink,
	}
	res.Findings = check.RunAll(cctx)
	if opts.Timer != nil {
		opts.Timer.End(phase, fmt.Sprintf("%d findings", res.Findings))
	}

	res.Bag.Sort()

	if opts.Cache != nil {
		// cache write failures never fail the lint
		_ = opts.Cache.Store(key, buildPayload(res.Bag, res.Findings))
	}
	return res
}

// TokenizeFile loads and tokenizes one file without running checks.
func TokenizeFile(fileSet *source.FileSet, path string, maxDiagnostics int) ([]token.Token, *diag.Bag, source.FileID, error) {
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("load %s: %w", path, err)
	}
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(fileSet.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx.ScanAll(), bag, id, nil
}
