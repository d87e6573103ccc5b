package esosearch

import (
	"sort"
	"strings"
)

// PointsPerTerm is the score contributed by each distinct matched term,
// regardless of the field it matched in.
const PointsPerTerm = 10

// Entry represents one article discovered on the index page.
type Entry struct {
	Title   string `json:"title"`
	Address string `json:"address"`
}

// HitMap maps a matched term to the number of times it matched.
type HitMap map[string]int

// Add records one occurrence of term.
func (m HitMap) Add(term string) {
	m[term]++
}

// Terms returns the matched terms in lexical order.
func (m HitMap) Terms() []string {
	terms := make([]string, 0, len(m))
	for term := range m {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// Merge returns a new HitMap holding the summed counts of m and other.
func (m HitMap) Merge(other HitMap) HitMap {
	out := make(HitMap, len(m)+len(other))
	for term, n := range m {
		out[term] += n
	}
	for term, n := range other {
		out[term] += n
	}
	return out
}

// FieldHits is the output of one scoring stage: hit maps keyed by entry
// address. Entries without a single match are absent.
type FieldHits map[string]HitMap

// Add records one occurrence of term for the entry at address.
func (f FieldHits) Add(address, term string) {
	hits, ok := f[address]
	if !ok {
		hits = make(HitMap)
		f[address] = hits
	}
	hits.Add(term)
}

// Merge returns a new FieldHits holding the summed counts of f and other.
func (f FieldHits) Merge(other FieldHits) FieldHits {
	out := make(FieldHits, len(f)+len(other))
	for addr, hits := range f {
		out[addr] = hits.Merge(nil)
	}
	for addr, hits := range other {
		out[addr] = out[addr].Merge(hits)
	}
	return out
}

// Hits holds the per-field hit maps of a single entry.
type Hits struct {
	Title       HitMap `json:"title,omitempty"`
	Description HitMap `json:"description,omitempty"`
	Code        HitMap `json:"code,omitempty"`
}

// Score counts distinct matched terms per field. Occurrence counts are
// kept for display only and carry no weight.
func (h Hits) Score() int {
	return PointsPerTerm * (len(h.Title) + len(h.Description) + len(h.Code))
}

// Result is an entry together with the hits accumulated for it.
type Result struct {
	Entry
	Hits Hits `json:"hits"`
}

// Score returns the derived score of the result.
func (r Result) Score() int {
	return r.Hits.Score()
}

// Matches explains which terms matched in which field, for example
// "Title: brain\tDesc: tape,turing". Fields without hits are omitted.
func (r Result) Matches() string {
	var parts []string
	if len(r.Hits.Title) > 0 {
		parts = append(parts, "Title: "+strings.Join(r.Hits.Title.Terms(), ","))
	}
	if len(r.Hits.Description) > 0 {
		parts = append(parts, "Desc: "+strings.Join(r.Hits.Description.Terms(), ","))
	}
	if len(r.Hits.Code) > 0 {
		parts = append(parts, "Code: "+strings.Join(r.Hits.Code.Terms(), ","))
	}
	return strings.Join(parts, "\t")
}
