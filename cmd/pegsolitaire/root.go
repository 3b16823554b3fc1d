package main

import (
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// minThreads is the floor applied to the default thread count: on hosts
// reporting fewer CPUs, the default is raised to this value.
const minThreads = 4

var (
	printBoards bool
	threads     int
)

var rootCmd = &cobra.Command{
	Use:   "pegsolitaire",
	Short: "Solve and inspect the 33-hole English peg solitaire puzzle",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&printBoards, "print", "p", false,
		"print the board after every move")
	rootCmd.PersistentFlags().IntVarP(&threads, "threads", "t", defaultThreads(),
		"number of worker threads to use for the parallel phases")

	rootCmd.AddCommand(calculateAllCmd)
	rootCmd.AddCommand(calculateAllNaiveCmd)
	rootCmd.AddCommand(calculateSingleCmd)
	rootCmd.AddCommand(compareSolutionsCmd)
	rootCmd.AddCommand(calculateRandomChanceSuccessRatioCmd)
	rootCmd.AddCommand(loadSolutionsCmd)
}

func defaultThreads() int {
	n := runtime.NumCPU()
	if n < minThreads {
		return minThreads
	}
	return n
}
