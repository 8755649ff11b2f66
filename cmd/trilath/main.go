package main

import "github.com/katalvlaran/trilath/internal/cli"

func main() {
	cli.Execute()
}
