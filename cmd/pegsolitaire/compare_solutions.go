package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/treepeck/pegsolitaire"
	"github.com/treepeck/pegsolitaire/internal/naive"
)

var compareSolutionsCmd = &cobra.Command{
	Use:   "compare-solutions",
	Short: "Compute the solvable set both ways and assert the two sets match",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("running frontier solver")
		frontier, err := pegsolitaire.Solve(context.Background(), threads)
		if err != nil {
			return fmt.Errorf("frontier solve: %w", err)
		}

		log.Info().Msg("running naive solver")
		reference, err := naive.Solve(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("naive solve: %w", err)
		}

		if !sameSet(frontier, reference) {
			return fmt.Errorf("solvable sets differ: frontier has %d boards, naive has %d",
				len(frontier), len(reference))
		}

		log.Info().Int("count", len(frontier)).Msg("solvable sets match")
		fmt.Println("OK:", len(frontier))
		return nil
	},
}

func sameSet(a, b []pegsolitaire.Board) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]pegsolitaire.Board(nil), a...)
	sb := append([]pegsolitaire.Board(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i].CompressedRepr() < sa[j].CompressedRepr() })
	sort.Slice(sb, func(i, j int) bool { return sb[i].CompressedRepr() < sb[j].CompressedRepr() })
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
