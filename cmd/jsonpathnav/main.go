package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/wenmin92/JsonPathNavigator/internal/adapters/driving/cli"
)

// version is overridden at build time with
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	_ = godotenv.Load()

	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
