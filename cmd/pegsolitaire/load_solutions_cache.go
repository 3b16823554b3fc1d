//go:build cache

package main

import (
	"embed"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/treepeck/pegsolitaire"
)

//go:embed solutions.dat.br
var embeddedCache embed.FS

var loadSolutionsCmd = &cobra.Command{
	Use:   "load-solutions",
	Short: "Load the precomputed solution cache embedded in this binary",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := embeddedCache.Open("solutions.dat.br")
		if err != nil {
			return err
		}
		defer f.Close()

		boards, err := pegsolitaire.LoadCache(f)
		if err != nil {
			return err
		}
		if err := checkSolvableCount(boards); err != nil {
			return err
		}

		fmt.Println(len(boards))
		return nil
	},
}
