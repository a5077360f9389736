package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/spigell/ats-matcher/cmd"
)

func main() {
	// GEMINI_API_KEY may come from a local .env file.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
