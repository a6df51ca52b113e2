// Command circletimer runs and renders the circular countdown timer.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/circletimer/cmd/circletimer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
