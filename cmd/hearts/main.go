package main

import "github.com/mcoot/hearts/internal/cli"

func main() {
	cli.Execute()
}
