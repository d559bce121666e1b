package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Event reports the lifecycle of one unit during a batch build.
// Every unit emits exactly two events: one when compilation starts
// and one with Done set when it finishes.
type Event struct {
	Path  string
	Stage Stage
	Done  bool
	Ok    bool
}

// BuildAll compiles paths concurrently, bounded by concurrency
// (NumCPU when zero or negative). Results line up with paths by index.
// A unit with diagnostics is a normal result; only an internal failure
// or a canceled context aborts the batch.
func BuildAll(ctx context.Context, paths []string, opts Options, concurrency int) ([]*Result, error) {
	return BuildAllEvents(ctx, paths, opts, concurrency, nil)
}

// BuildAllEvents is BuildAll with progress reporting. Events are sent
// to events when it is non-nil; the channel needs capacity for two
// events per path and is left open for the caller to close.
func BuildAllEvents(ctx context.Context, paths []string, opts Options, concurrency int, events chan<- Event) ([]*Result, error) {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			emit(events, Event{Path: path, Stage: StageLoad})
			res, err := Compile(path, opts)
			if err != nil {
				return err
			}
			results[i] = res
			emit(events, Event{Path: path, Stage: res.Stage, Done: true, Ok: res.Ok()})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}
