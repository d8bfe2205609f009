package translit

import (
	"context"
	"sync"

	"subweave/internal/captions"
)

// DefaultWorkers bounds the per-unit conversion fan-out when the caller
// does not choose a pool size.
const DefaultWorkers = 4

// Apply transliterates every cue independently and returns the converted
// cues in input order alongside the per-cue results. Units are isolated:
// a degraded conversion in one never affects its siblings. Conversion runs
// on a bounded worker pool because each unit is an independent pure call.
func (a *Adapter) Apply(ctx context.Context, cues []captions.Cue, workers int) ([]captions.Cue, []Result, error) {
	if len(cues) == 0 {
		return nil, nil, nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(cues) {
		workers = len(cues)
	}

	converted := make([]captions.Cue, len(cues))
	results := make([]Result, len(cues))
	errs := make([]error, len(cues))

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				res, err := a.Transliterate(ctx, cues[i].Text)
				if err != nil {
					errs[i] = err
					converted[i] = cues[i]
					continue
				}
				results[i] = res
				converted[i] = captions.Cue{
					StartMS: cues[i].StartMS,
					EndMS:   cues[i].EndMS,
					Text:    res.Text,
				}
			}
		}()
	}

feed:
	for i := range cues {
		select {
		case indexes <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return converted, results, nil
}

// DegradedCount reports how many units came back degraded.
func DegradedCount(results []Result) int {
	count := 0
	for _, res := range results {
		if res.Degraded {
			count++
		}
	}
	return count
}
