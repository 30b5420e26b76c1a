package main

import (
	"os"

	"github.com/junkpiano/resizer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
