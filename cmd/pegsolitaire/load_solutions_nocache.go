//go:build !cache

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// loadSolutionsCmd is a stub in builds without a compiled-in cache file
// (build tag "cache"); it exists so the rest of the command tree doesn't
// need to special-case its absence.
var loadSolutionsCmd = &cobra.Command{
	Use:   "load-solutions",
	Short: "Load the precomputed solution cache embedded in this binary (unavailable: built without -tags cache)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("this binary was built without -tags cache; no solution cache is embedded")
	},
}
