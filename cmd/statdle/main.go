package main

import (
	"github.com/statdle/statdle/internal/cli"
)

func main() {
	cli.Execute()
}
