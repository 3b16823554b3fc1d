package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/treepeck/pegsolitaire"
)

var calculateAllCmd = &cobra.Command{
	Use:   "calculate-all",
	Short: "Compute the full solvable set using the frontier solver",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Int("threads", threads).Msg("starting frontier solve")
		start := time.Now()

		solvable, err := pegsolitaire.Solve(context.Background(), threads)
		if err != nil {
			return err
		}

		log.Info().
			Int("count", len(solvable)).
			Dur("elapsed", time.Since(start)).
			Msg("frontier solve complete")
		fmt.Println(len(solvable))
		return nil
	},
}
