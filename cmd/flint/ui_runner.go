package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"flint/internal/driver"
	"flint/internal/source"
	"flint/internal/ui"
)

type lintOutcome struct {
	fileSet *source.FileSet
	results []driver.LintResult
	err     error
}

// runLintDirWithUI runs LintDir behind a Bubble Tea progress view. The lint
// itself runs on a background goroutine feeding the UI through a channel
// sink; the UI quits when the sink closes.
func runLintDirWithUI(ctx context.Context, title, dir string, opts driver.Options) (*source.FileSet, []driver.LintResult, error) {
	files, err := driver.ListCxxFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	sink := driver.NewChanSink(256)
	opts.Events = sink
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		fileSet, results, err := driver.LintDir(ctx, dir, opts)
		outcomeCh <- lintOutcome{fileSet: fileSet, results: results, err: err}
		sink.Close()
	}()

	model := ui.NewProgressModel(title, files, sink.C)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
