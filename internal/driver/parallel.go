package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"flint/internal/diag"
	"flint/internal/fileclass"
	"flint/internal/source"
)

// ListCxxFiles returns the sorted C/C++ files under dir.
func ListCxxFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// skip VCS internals
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if fileclass.Classify(path) != fileclass.Unknown {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LintDir lints every C/C++ file under dir in parallel. Result order
// matches the sorted file list. Each worker owns a unique index into the
// results slice, so no mutex guards it.
func LintDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []LintResult, error) {
	files, err := ListCxxFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading mutates the FileSet, so it happens up front on one
	// goroutine; the parallel phase only reads.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for i, path := range files {
		publish(opts.Events, Event{Path: path, Stage: StageQueued, Index: i, Total: len(files)})
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]LintResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.UnknownCode,
					Message:  loadErr.Error(),
				})
				results[i] = LintResult{Path: path, Bag: bag}
				publish(opts.Events, Event{Path: path, Stage: StageDone, Index: i, Total: len(files), Err: true})
				return nil
			}

			results[i] = lintLoaded(fileSet, fileIDs[path], path, opts, func(s Stage) {
				publish(opts.Events, Event{Path: path, Stage: s, Index: i, Total: len(files)})
			})
			publish(opts.Events, Event{
				Path:     path,
				Stage:    StageDone,
				Index:    i,
				Total:    len(files),
				Findings: results[i].Findings,
				Cached:   results[i].Cached,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects every per-file bag into one sorted, deduplicated bag.
func MergeBags(results []LintResult) *diag.Bag {
	total := diag.NewBag(0)
	for _, r := range results {
		if r.Bag != nil {
			total.Merge(r.Bag)
		}
	}
	total.Sort()
	total.Dedup()
	return total
}

// TotalFindings sums finding counts across results.
func TotalFindings(results []LintResult) int {
	n := 0
	for _, r := range results {
		n += r.Findings
	}
	return n
}
