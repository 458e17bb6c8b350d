/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Batch evaluation for the Akaylee Fuzzy engine. Runs many input tuples
against one shared configuration in parallel with a bounded worker pool. Each tuple is
an independent compute invocation with its own buffers, so workers need no
synchronization beyond job distribution.
*/

package fuzzy

import (
	"fmt"
	"runtime"
	"sync"
)

// BatchResult pairs one input tuple's trace with its position in the batch
type BatchResult struct {
	Index int    `json:"index"`
	Trace *Trace `json:"trace"`
}

// ComputeBatch evaluates every input tuple against the system, distributing
// tuples across up to workers goroutines (the number of CPUs when workers is
// not positive). Results are returned in input order. The first failing tuple
// aborts the batch with its index attached to the error.
func (s *System) ComputeBatch(inputs []map[string]float64, workers int) ([]BatchResult, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(inputs) {
		workers = len(inputs)
	}

	results := make([]BatchResult, len(inputs))
	errs := make([]error, len(inputs))
	jobs := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				trace, err := s.ComputeWithTrace(inputs[i])
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = BatchResult{Index: i, Trace: trace}
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("batch input %d: %w", i, err)
		}
	}
	return results, nil
}
