package main

import (
	"os"

	"github.com/ppmconsultants/ppmsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
