package main

import (
	"os"

	"github.com/riposte-http/riposte/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
