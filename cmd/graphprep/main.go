// Command graphprep normalizes attributed graphs and derives train,
// validation and test views that agree on every shared vertex.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
