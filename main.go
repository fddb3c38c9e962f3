package main

import (
	"os"

	"github.com/medscroll/onboarding/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
