package search_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/esosearch"
	"github.com/fwojciec/esosearch/search"
	"github.com/stretchr/testify/assert"
)

// scored returns a result whose score is 10 per title term.
func scored(name string, terms ...string) esosearch.Result {
	hits := esosearch.HitMap{}
	for _, t := range terms {
		hits.Add(t)
	}
	return esosearch.Result{Entry: entry(name), Hits: esosearch.Hits{Title: hits}}
}

func TestRank(t *testing.T) {
	t.Parallel()

	t.Run("keeps the best results and drops zero scores", func(t *testing.T) {
		t.Parallel()

		results := []esosearch.Result{
			scored("A", "x", "y", "z"),
			scored("B"),
			scored("C", "x"),
			scored("D", "x", "y"),
		}

		ranked := search.Rank(results, 2)

		assert.Len(t, ranked, 2)
		assert.Equal(t, "A", ranked[0].Title)
		assert.Equal(t, 30, ranked[0].Score())
		assert.Equal(t, "D", ranked[1].Title)
		assert.Equal(t, 20, ranked[1].Score())
	})

	t.Run("stops at zero scores before the limit", func(t *testing.T) {
		t.Parallel()

		results := []esosearch.Result{scored("A", "x"), scored("B"), scored("C", "x", "y")}

		ranked := search.Rank(results, 10)

		assert.Equal(t, []string{"C", "A"}, titles(ranked))
	})

	t.Run("all-zero results rank to nothing", func(t *testing.T) {
		t.Parallel()

		results := []esosearch.Result{scored("A"), scored("B"), scored("C")}

		for _, limit := range []int{0, 1, 3, 100} {
			assert.Empty(t, search.Rank(results, limit), "limit %d", limit)
		}
	})

	t.Run("keeps input order among equal scores", func(t *testing.T) {
		t.Parallel()

		results := []esosearch.Result{scored("A", "x"), scored("B", "y"), scored("C", "x", "y"), scored("D", "z")}

		ranked := search.Rank(results, 10)

		assert.Equal(t, []string{"C", "A", "B", "D"}, titles(ranked))
	})

	t.Run("non-positive limit means the default", func(t *testing.T) {
		t.Parallel()

		var results []esosearch.Result
		for i := range 15 {
			results = append(results, scored(fmt.Sprintf("L%d", i), "x"))
		}

		assert.Len(t, search.Rank(results, 0), search.DefaultLimit)
		assert.Len(t, search.Rank(results, -1), search.DefaultLimit)
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		t.Parallel()

		results := []esosearch.Result{scored("A"), scored("B", "x")}

		search.Rank(results, 10)

		assert.Equal(t, []string{"A", "B"}, titles(results))
	})
}

func titles(results []esosearch.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}
