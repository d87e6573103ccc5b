package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/esosearch"
	"github.com/fwojciec/esosearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Quiet     bool
	Cache     esosearch.CacheStore
	Codec     esosearch.KeyCodec
	Index     esosearch.IndexSource
	Pages     esosearch.PageFetcher
	Searcher  *search.Searcher
	Extractor esosearch.Extractor
	Converter esosearch.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CacheDir     string        `name:"cache-dir" env:"ESOSEARCH_CACHE_DIR" help:"Directory holding downloaded pages"`
	CacheBackend string        `name:"cache-backend" enum:"fs,sqlite" default:"fs" help:"Cache storage (fs or sqlite)"`
	BaseURL      string        `name:"base-url" env:"ESOSEARCH_BASE_URL" default:"https://esolangs.org" help:"Wiki to search"`
	Timeout      time.Duration `default:"10s" help:"Per-request timeout"`
	Rate         float64       `default:"0" help:"Maximum requests per second (0 means unlimited)"`
	Concurrency  int           `default:"3" help:"Concurrent page downloads"`
	Verbose      int           `short:"v" type:"counter" help:"Log cache hits and every request"`
	Quiet        bool          `short:"q" help:"Only log errors and hide match details"`

	Search SearchCmd `cmd:"" help:"Search languages by title, description and code"`
	Show   ShowCmd   `cmd:"" help:"Print a language's article as Markdown"`
	Cache  CacheCmd  `cmd:"" help:"Inspect or clear the page cache"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Title         string `short:"t" help:"Terms to find in language names"`
	Description   string `short:"d" help:"Terms to find in article prose"`
	Code          string `short:"c" help:"Terms to find in code samples"`
	Max           int    `short:"m" default:"10" help:"Maximum number of results"`
	CaseSensitive bool   `short:"s" name:"case-sensitive" help:"Match terms case-sensitively"`
	DeleteCache   bool   `name:"delete-cache" help:"Clear the cache when done"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Title string `arg:"" help:"Language name"`
}

// CacheCmd groups the cache maintenance subcommands.
type CacheCmd struct {
	List  CacheListCmd  `cmd:"" help:"List cached pages"`
	Clear CacheClearCmd `cmd:"" help:"Delete every cached page"`
}

// CacheListCmd is the "cache list" subcommand.
type CacheListCmd struct{}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct{}
