package search

import (
	"cmp"
	"slices"

	"github.com/fwojciec/esosearch"
)

// DefaultLimit is the number of results returned when no limit is given.
const DefaultLimit = 10

// Rank orders results by score, highest first, keeping the input order
// among equal scores. Results without a single hit are dropped and at most
// limit results are returned. A limit below 1 means DefaultLimit.
func Rank(results []esosearch.Result, limit int) []esosearch.Result {
	if limit < 1 {
		limit = DefaultLimit
	}

	ranked := make([]esosearch.Result, 0, len(results))
	for _, r := range results {
		if r.Score() > 0 {
			ranked = append(ranked, r)
		}
	}
	slices.SortStableFunc(ranked, func(a, b esosearch.Result) int {
		return cmp.Compare(b.Score(), a.Score())
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
