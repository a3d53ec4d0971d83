package main

import "github.com/pfrederiksen/fixture-viewer/internal/cli"

func main() {
	cli.Execute()
}
