// lvlath-corpus generates, augments and labels small undirected graphs.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlath-corpus/cmd"
)

func main() {
	cli := cmd.NewCLI()

	if err := cli.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
