// Command pegsolitaire computes and inspects the solvable set of the
// 33-hole English peg solitaire puzzle.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
