package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/treepeck/pegsolitaire"
)

var calculateRandomChanceSuccessRatioCmd = &cobra.Command{
	Use:   "calculate-random-chance-success-ratio",
	Short: "Compute the probability of solving the puzzle by playing uniformly random legal moves",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("solving before propagating probabilities")
		solvable, err := pegsolitaire.Solve(context.Background(), threads)
		if err != nil {
			return err
		}

		probability := pegsolitaire.Probability(solvable)
		ratio := probability[pegsolitaire.Default().Normalize()]

		fmt.Printf("%.10f%%\n", ratio*100)
		return nil
	},
}
