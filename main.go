// Command lazor solves, validates, renders, batches, and generates Lazor
// grid puzzles described in the .bff format.
package main

import "github.com/lazorproj/lazor-solver/cmd"

func main() {
	cmd.Execute()
}
