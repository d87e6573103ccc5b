// Package esosearch searches a wiki-style index of articles, by default the
// esolangs.org language list. It discovers articles from the index page,
// caches their raw markup locally, and scores each article against separate
// term sets for the title, the prose description and the code samples.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, goquery/).
package esosearch
