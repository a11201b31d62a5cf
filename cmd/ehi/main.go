package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ecosystem-labs/ehi/internal/ehi/cli"
)

func main() {
	// Local development convenience: GITHUB_TOKEN etc. from a .env file.
	_ = godotenv.Load(".env")

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
