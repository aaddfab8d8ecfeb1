package main

import (
	"os"

	"kushld/cmd"
)

func main() {
	os.Exit(cmd.RunDriver())
}
