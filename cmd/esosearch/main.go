package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/esosearch"
	"github.com/fwojciec/esosearch/crawl"
	"github.com/fwojciec/esosearch/fs"
	"github.com/fwojciec/esosearch/goquery"
	"github.com/fwojciec/esosearch/htmltomarkdown"
	esohttp "github.com/fwojciec/esosearch/http"
	"github.com/fwojciec/esosearch/search"
	esoslog "github.com/fwojciec/esosearch/slog"
	"github.com/fwojciec/esosearch/sqlite"
	"github.com/fwojciec/esosearch/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache directory used when --cache-dir is not given. Set before
	// calling Run().
	CacheDir string

	// SQLite database, open only with the sqlite cache backend.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("esosearch"),
		kong.Description("Search the esolangs.org language list by title, description and code."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'esosearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	verbosity := cli.Verbose
	if cli.Quiet {
		verbosity = -1
	}
	logger := esoslog.NewLogger(stderr, verbosity)
	deps.Logger = logger
	deps.Quiet = cli.Quiet

	dir := cli.CacheDir
	if dir == "" {
		dir = m.CacheDir
	}
	cache, err := m.openCache(cli.CacheBackend, dir)
	if err != nil {
		return err
	}
	defer m.Close()
	deps.Cache = esoslog.NewLoggingCacheStore(cache, logger)

	baseURL := strings.TrimSuffix(cli.BaseURL, "/")
	deps.Codec = esosearch.NewKeyCodec(baseURL + esosearch.ArticlePath)

	fetcher := esoslog.NewLoggingFetcher(esohttp.NewFetcher(
		esohttp.WithTimeout(cli.Timeout),
		esohttp.WithRateLimit(cli.Rate),
	), logger)
	defer fetcher.Close()

	deps.Index = &crawl.IndexFetcher{
		Cache:   deps.Cache,
		Fetcher: fetcher,
		Parser:  goquery.NewIndexParser(),
		Logger:  logger,
		BaseURL: baseURL,
	}
	deps.Pages = &crawl.ContentFetcher{
		Cache:       deps.Cache,
		Fetcher:     fetcher,
		Codec:       deps.Codec,
		Logger:      logger,
		Concurrency: cli.Concurrency,
	}
	deps.Searcher = &search.Searcher{
		Index:     deps.Index,
		Pages:     deps.Pages,
		Cache:     deps.Cache,
		Codec:     deps.Codec,
		Extractor: goquery.NewTextExtractor(),
		Logger:    logger,
		Progress: func(p esosearch.FetchProgress) {
			logger.Debug("fetch progress", "completed", p.Completed, "total", p.Total, "url", p.Address)
		},
	}
	deps.Extractor = trafilatura.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter(baseURL)

	return kongCtx.Run(deps)
}

// openCache returns the cache store for backend rooted at dir.
func (m *Main) openCache(backend, dir string) (esosearch.CacheStore, error) {
	switch backend {
	case "", backendFS:
		return fs.NewCacheStore(dir), nil
	case backendSQLite:
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory %q: %w", dir, err)
		}
		m.DB = sqlite.NewDB(filepath.Join(dir, sqliteFile))
		if err := m.DB.Open(); err != nil {
			return nil, fmt.Errorf("failed to open cache database at %q: %w", m.DB.Path(), err)
		}
		return sqlite.NewCacheStore(m.DB), nil
	default:
		return nil, esosearch.Errorf(esosearch.EINVALID, "unknown cache backend %q", backend)
	}
}

const (
	backendFS     = "fs"
	backendSQLite = "sqlite"
	sqliteFile    = "cache.db"
)

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "cache"
	}
	return filepath.Join(dir, "esosearch")
}
