package interpret

import (
	"runtime"
	"sync"

	"github.com/geniusdna/geniusdna/internal/parser"
)

// WorkItem holds an observation waiting to be classified.
type WorkItem struct {
	Seq         int
	Observation parser.Observation
}

// WorkResult holds the interpretation of a single work item.
type WorkResult struct {
	Seq            int
	Interpretation *Interpretation
}

// ParallelInterpret classifies work items using a pool of workers.
// Results arrive in completion order; Seq tells the caller where each one
// belongs. If workers is 0, runtime.NumCPU() is used.
func (it *Interpreter) ParallelInterpret(items <-chan WorkItem, workers int) <-chan WorkResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan WorkResult, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()
			for item := range items {
				results <- WorkResult{
					Seq:            item.Seq,
					Interpretation: it.Interpret(item.Observation),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
