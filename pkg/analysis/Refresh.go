// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package analysis

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/analyst/pkg/result"
)

// Refresh fetches the results of the selected scenarios.
// In compare mode both scenarios are fetched concurrently.
// Without a marker, Refresh does nothing.
func (p *Panel) Refresh(ctx context.Context) error {
	if p.Marker == nil {
		return nil
	}

	p.clearResults()

	queries := []string{p.Scenario1}
	if p.IsComparing() {
		queries = append(queries, p.Scenario2)
	}

	results := make([]*result.Result, len(queries))
	errs := make([]error, len(queries))

	var wg sync.WaitGroup
	for i, scenarioId := range queries {
		wg.Add(1)
		go func(i int, scenarioId string) {
			defer wg.Done()
			r, err := p.Fetcher.Result(ctx, p.Query(scenarioId))
			if err != nil {
				errs[i] = errors.Wrapf(err, "error fetching result for scenario %q", scenarioId)
				return
			}
			results[i] = r
		}(i, scenarioId)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	p.Result1 = results[0]
	if len(results) > 1 {
		p.Result2 = results[1]
	}
	return nil
}
