package main

import (
	"fmt"

	"github.com/fwojciec/esosearch"
)

// Run executes the cache list command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	keys, err := deps.Cache.Keys(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(err))
		return err
	}

	if len(keys) == 0 {
		fmt.Fprintln(deps.Stdout, "Cache is empty.")
		return nil
	}

	for _, key := range keys {
		if key == esosearch.IndexKey {
			fmt.Fprintf(deps.Stdout, "%s  (language list)\n", key)
			continue
		}
		address, err := deps.Codec.Decode(key)
		if err != nil {
			fmt.Fprintln(deps.Stdout, key)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", key, address)
	}
	return nil
}

// Run executes the cache clear command.
func (c *CacheClearCmd) Run(deps *Dependencies) error {
	if err := deps.Cache.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", esosearch.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Cache cleared.")
	return nil
}
