package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/treepeck/pegsolitaire/internal/naive"
)

var dotPath string

var calculateAllNaiveCmd = &cobra.Command{
	Use:   "calculate-all-naive",
	Short: "Compute the full solvable set using the single-threaded reference solver",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info().Msg("starting naive solve")
		start := time.Now()

		var dag *naive.DAG
		if dotPath != "" {
			dag = naive.NewDAG()
		}

		solvable, err := naive.Solve(context.Background(), dag)
		if err != nil {
			return err
		}

		log.Info().
			Int("count", len(solvable)).
			Dur("elapsed", time.Since(start)).
			Msg("naive solve complete")
		fmt.Println(len(solvable))

		if dag != nil {
			f, err := os.Create(dotPath)
			if err != nil {
				return fmt.Errorf("create dot file: %w", err)
			}
			defer f.Close()
			if err := dag.WriteDOT(f); err != nil {
				return fmt.Errorf("write dot file: %w", err)
			}
			log.Info().Str("path", dotPath).Msg("wrote solution DAG")
		}
		return nil
	},
}

func init() {
	calculateAllNaiveCmd.Flags().StringVar(&dotPath, "dot", "",
		"write the solution DAG as Graphviz DOT to this path")
}
