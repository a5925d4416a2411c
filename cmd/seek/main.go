package main

import "github.com/aalvaropc/seek/internal/cli"

func main() {
	cli.Execute()
}
