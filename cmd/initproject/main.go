package main

import (
	"fmt"
	"os"

	"github.com/kaianolevine/initproject"
)

func main() {
	if err := initproject.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
