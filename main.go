package main

import "portview/internal/cli"

func main() {
	cli.Execute()
}
