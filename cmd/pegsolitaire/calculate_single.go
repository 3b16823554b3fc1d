package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/treepeck/pegsolitaire"
	"github.com/treepeck/pegsolitaire/render"
)

var calculateSingleCmd = &cobra.Command{
	Use:   "calculate-single",
	Short: "Find and print one complete solution from the standard starting position",
	RunE: func(cmd *cobra.Command, args []string) error {
		solution, ok := pegsolitaire.FirstSolution()
		if !ok {
			return fmt.Errorf("no solution found")
		}

		fmt.Println(solution.String())

		if printBoards {
			board := pegsolitaire.Default()
			fmt.Println(render.Board(board))
			for _, m := range solution.Moves() {
				board = board.Move(m)
				fmt.Println(render.Move(board, m))
			}
		}
		return nil
	},
}
