package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/esosearch"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := c.find(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(err))
		return err
	}

	if err := deps.Pages.FetchOne(deps.Ctx, entry); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(err))
		return err
	}

	key, err := deps.Codec.Encode(entry.Address)
	if err != nil {
		return err
	}
	page, err := deps.Cache.Read(deps.Ctx, key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(err))
		return err
	}

	extracted, err := deps.Extractor.Extract(string(page))
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", entry.Address, err)
	}
	md, err := deps.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: article %q has no readable content\n", entry.Title)
		return err
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n%s\n\n%s\n", entry.Title, entry.Address, md)
	return nil
}

// find returns the index entry whose title matches c.Title, ignoring case.
func (c *ShowCmd) find(deps *Dependencies) (esosearch.Entry, error) {
	entries, err := deps.Index.FetchIndex(deps.Ctx)
	if err != nil {
		return esosearch.Entry{}, err
	}
	for _, e := range entries {
		if strings.EqualFold(e.Title, c.Title) {
			return e, nil
		}
	}
	return esosearch.Entry{}, esosearch.Errorf(esosearch.ENOTFOUND, "no language named %q on the language list", c.Title)
}
