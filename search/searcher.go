package search

import (
	"context"
	"log/slog"

	"github.com/fwojciec/esosearch"
)

// Query holds the terms to match in each field. A field without terms is
// not searched.
type Query struct {
	Title         []string
	Description   []string
	Code          []string
	Limit         int
	CaseSensitive bool
}

// IsEmpty reports whether the query has no terms in any field.
func (q Query) IsEmpty() bool {
	return len(nonEmpty(q.Title)) == 0 &&
		len(nonEmpty(q.Description)) == 0 &&
		len(nonEmpty(q.Code)) == 0
}

// Searcher runs the full pipeline: index discovery, page fetching when
// page fields are queried, scoring and ranking.
type Searcher struct {
	Index     esosearch.IndexSource
	Pages     esosearch.PageFetcher
	Cache     esosearch.CacheStore
	Codec     esosearch.KeyCodec
	Extractor esosearch.TextExtractor
	Logger    *slog.Logger

	// Progress, if set, is called as article pages are fetched.
	Progress esosearch.FetchProgressFunc
}

// Search returns the ranked results for q.
// Returns EINVALID if q has no terms.
func (s *Searcher) Search(ctx context.Context, q Query) ([]esosearch.Result, error) {
	if q.IsEmpty() {
		return nil, esosearch.Errorf(esosearch.EINVALID, "no search terms given")
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entries, err := s.Index.FetchIndex(ctx)
	if err != nil {
		return nil, err
	}

	scorer := &Scorer{
		Cache:         s.Cache,
		Codec:         s.Codec,
		Extractor:     s.Extractor,
		CaseSensitive: q.CaseSensitive,
	}

	var titleHits, descHits, codeHits esosearch.FieldHits

	if terms := nonEmpty(q.Title); len(terms) > 0 {
		logger.Info("searching", "field", "title", "terms", terms)
		titleHits = scorer.ScoreTitles(entries, terms)
	}

	descTerms, codeTerms := nonEmpty(q.Description), nonEmpty(q.Code)
	if len(descTerms) > 0 || len(codeTerms) > 0 {
		fetched, err := s.Pages.FetchAll(ctx, entries, s.Progress)
		if err != nil {
			return nil, err
		}
		available := withoutFailed(entries, fetched.FailedAddresses())

		if len(descTerms) > 0 {
			logger.Info("searching", "field", "description", "terms", descTerms)
			if descHits, err = scorer.ScoreDescriptions(ctx, available, descTerms); err != nil {
				return nil, err
			}
		}
		if len(codeTerms) > 0 {
			logger.Info("searching", "field", "code", "terms", codeTerms)
			if codeHits, err = scorer.ScoreCode(ctx, available, codeTerms); err != nil {
				return nil, err
			}
		}
	}

	results := make([]esosearch.Result, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.Address] {
			continue
		}
		seen[e.Address] = true
		results = append(results, esosearch.Result{
			Entry: e,
			Hits: esosearch.Hits{
				Title:       titleHits[e.Address],
				Description: descHits[e.Address],
				Code:        codeHits[e.Address],
			},
		})
	}
	return Rank(results, q.Limit), nil
}

func withoutFailed(entries []esosearch.Entry, failed map[string]bool) []esosearch.Entry {
	if len(failed) == 0 {
		return entries
	}
	out := make([]esosearch.Entry, 0, len(entries))
	for _, e := range entries {
		if !failed[e.Address] {
			out = append(out, e)
		}
	}
	return out
}

func nonEmpty(terms []string) []string {
	var out []string
	for _, t := range terms {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
