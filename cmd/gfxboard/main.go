package main

import "github.com/gfxboard/gfxboard/internal/cli"

func main() {
	cli.Execute()
}
