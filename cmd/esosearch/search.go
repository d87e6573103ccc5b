package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/esosearch"
	"github.com/fwojciec/esosearch/search"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Max < 1 {
		fmt.Fprintf(deps.Stderr, "error: --max must be a positive number, got %d\n", c.Max)
		return esosearch.Errorf(esosearch.EINVALID, "invalid result limit %d", c.Max)
	}
	q := search.Query{
		Title:         strings.Fields(c.Title),
		Description:   strings.Fields(c.Description),
		Code:          strings.Fields(c.Code),
		Limit:         c.Max,
		CaseSensitive: c.CaseSensitive,
	}
	if q.IsEmpty() {
		fmt.Fprintln(deps.Stderr, "error: give at least one of --title, --description or --code")
		return esosearch.Errorf(esosearch.EINVALID, "no search terms given")
	}

	results, err := deps.Searcher.Search(deps.Ctx, q)
	if err == nil {
		printResults(deps, results)
	} else {
		fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(err))
	}

	if c.DeleteCache {
		if cerr := deps.Cache.Clear(deps.Ctx); cerr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(cerr))
			if err == nil {
				err = cerr
			}
		}
	}
	return err
}

func printResults(deps *Dependencies, results []esosearch.Result) {
	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "Sorry there were no results")
		return
	}
	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%d  %s  %s\n", r.Score(), r.Title, r.Address)
		if !deps.Quiet {
			fmt.Fprintf(deps.Stdout, "    %s\n", r.Matches())
		}
	}
}
