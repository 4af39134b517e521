package main

import (
	"os"

	"github.com/datausa/datausa-go/cmd"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(cmd.Execute(version, commit))
}
