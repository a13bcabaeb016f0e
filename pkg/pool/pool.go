package pool

import (
	"context"
	"sync"

	"github.com/habedi/gols/pkg/clierr"
)

// WorkerFunc processes one item and produces a value or an error.
type WorkerFunc[T, R any] func(ctx context.Context, item T) (R, error)

// Run processes items concurrently on numWorkers goroutines.
// It returns one Result per item, in the order of items. Errors are
// classified with clierr.From. Items that were never started because ctx
// was cancelled carry a Custom error with the context error text.
func Run[T, R any](ctx context.Context, items []T, numWorkers int, workerFunc WorkerFunc[T, R]) []clierr.Result[R] {
	if numWorkers < 1 {
		numWorkers = 1
	}

	var wg sync.WaitGroup
	results := make([]clierr.Result[R], len(items))
	started := make([]bool, len(items))
	taskChan := make(chan int, numWorkers)

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range taskChan {
				if ctx.Err() != nil {
					continue
				}
				started[idx] = true
				v, err := workerFunc(ctx, items[idx])
				if err != nil {
					results[idx] = clierr.Fail[R](clierr.From(err))
					continue
				}
				results[idx] = clierr.Ok(v)
			}
		}()
	}

OUT:
	for idx := range items {
		select {
		case taskChan <- idx:
		case <-ctx.Done():
			break OUT
		}
	}
	close(taskChan)

	wg.Wait()

	for idx := range results {
		if !started[idx] {
			results[idx] = clierr.Fail[R](clierr.FromString(ctx.Err().Error()))
		}
	}
	return results
}
