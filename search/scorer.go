// Package search scores index entries against title, description and code
// terms and ranks the results.
package search

import (
	"context"
	"strings"

	"github.com/fwojciec/esosearch"
)

// Scorer matches terms against entry titles and cached article pages.
// Matching is literal substring containment.
type Scorer struct {
	Cache     esosearch.CacheStore
	Codec     esosearch.KeyCodec
	Extractor esosearch.TextExtractor

	// CaseSensitive compares raw strings instead of lowercasing both sides.
	CaseSensitive bool
}

// ScoreTitles records one hit for every term contained in an entry title.
func (s *Scorer) ScoreTitles(entries []esosearch.Entry, terms []string) esosearch.FieldHits {
	hits := make(esosearch.FieldHits)
	needles := s.needles(terms)
	if len(needles) == 0 {
		return hits
	}
	for _, e := range entries {
		title := s.fold(e.Title)
		for _, n := range needles {
			if strings.Contains(title, n.folded) {
				hits.Add(e.Address, n.term)
			}
		}
	}
	return hits
}

// ScoreDescriptions records one hit per prose block containing a term.
// Every entry's page must be cached; otherwise ENOTCACHED is returned and
// nothing is scored.
func (s *Scorer) ScoreDescriptions(ctx context.Context, entries []esosearch.Entry, terms []string) (esosearch.FieldHits, error) {
	return s.scorePages(ctx, entries, terms, esosearch.DescriptiveTags)
}

// ScoreCode records one hit per code block containing a term.
// Every entry's page must be cached; otherwise ENOTCACHED is returned and
// nothing is scored.
func (s *Scorer) ScoreCode(ctx context.Context, entries []esosearch.Entry, terms []string) (esosearch.FieldHits, error) {
	return s.scorePages(ctx, entries, terms, esosearch.CodeTags)
}

func (s *Scorer) scorePages(ctx context.Context, entries []esosearch.Entry, terms []string, tags esosearch.TagSet) (esosearch.FieldHits, error) {
	needles := s.needles(terms)
	if len(needles) == 0 {
		return esosearch.FieldHits{}, nil
	}

	keys, err := s.cachedKeys(ctx, entries)
	if err != nil {
		return nil, err
	}

	hits := make(esosearch.FieldHits)
	for i, e := range entries {
		data, err := s.Cache.Read(ctx, keys[i])
		if err != nil {
			return nil, err
		}
		blocks, err := s.Extractor.ExtractText(string(data), tags)
		if err != nil {
			return nil, err
		}
		for _, block := range blocks {
			block = s.fold(block)
			for _, n := range needles {
				if strings.Contains(block, n.folded) {
					hits.Add(e.Address, n.term)
				}
			}
		}
	}
	return hits, nil
}

// cachedKeys returns the cache key of every entry, failing on the first
// entry whose page is not cached.
func (s *Scorer) cachedKeys(ctx context.Context, entries []esosearch.Entry) ([]string, error) {
	keys := make([]string, len(entries))
	for i, e := range entries {
		key, err := s.Codec.Encode(e.Address)
		if err != nil {
			return nil, err
		}
		ok, err := s.Cache.Exists(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, esosearch.Errorf(esosearch.ENOTCACHED, "page for %q is not cached", e.Title)
		}
		keys[i] = key
	}
	return keys, nil
}

type needle struct {
	term   string
	folded string
}

func (s *Scorer) needles(terms []string) []needle {
	var out []needle
	for _, t := range terms {
		if t == "" {
			continue
		}
		out = append(out, needle{term: t, folded: s.fold(t)})
	}
	return out
}

func (s *Scorer) fold(text string) string {
	if s.CaseSensitive {
		return text
	}
	return strings.ToLower(text)
}
