package main

import (
	"context"
	"io"
	"sync"

	"mirnaexplorer/mirna"
)

// printer renders one lookup result
type printer func(w io.Writer)

type command struct {
	endpoint mirna.Endpoint
	lookup   func(ctx context.Context, c *mirna.Client, name, credential string) (printer, error)
}

var commands = map[string]command{
	"mirna": {
		endpoint: mirna.MiRNAByName,
		lookup: func(ctx context.Context, c *mirna.Client, name, credential string) (printer, error) {
			entries, err := c.LookupMiRNA(ctx, name, credential)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) { renderMiRNAs(w, name, entries) }, nil
		},
	},
	"predictions": {
		endpoint: mirna.Predictions,
		lookup: func(ctx context.Context, c *mirna.Client, name, credential string) (printer, error) {
			predictions, err := c.LookupPredictions(ctx, name, credential)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) { renderPredictions(w, name, predictions) }, nil
		},
	},
	"pathways": {
		endpoint: mirna.PathwaysByGene,
		lookup: func(ctx context.Context, c *mirna.Client, name, credential string) (printer, error) {
			pathways, err := c.LookupPathways(ctx, name, credential)
			if err != nil {
				return nil, err
			}
			return func(w io.Writer) { renderPathways(w, name, pathways) }, nil
		},
	},
}

type lookupResult struct {
	name  string
	print printer
	err   error
}

// lookupAll runs fn for every name with at most concurrency calls in
// flight. Results keep the order of names. Names not started before ctx
// is done get ctx.Err().
func lookupAll(ctx context.Context, names []string, concurrency int, fn func(ctx context.Context, name string) (printer, error)) []lookupResult {
	var (
		results = make([]lookupResult, len(names))
		wg      sync.WaitGroup
		sem     = make(chan struct{}, concurrency)
	)

	for i, name := range names {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i] = lookupResult{name: name, err: ctx.Err()}
			continue
		}

		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			defer func() { <-sem }()

			p, err := fn(ctx, name)
			results[i] = lookupResult{name: name, print: p, err: err}
		}(i, name)
	}

	wg.Wait()
	return results
}
