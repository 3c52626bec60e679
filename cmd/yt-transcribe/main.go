package main

import (
	"os"

	"github.com/mikhailklassen/yt-transcribe/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
