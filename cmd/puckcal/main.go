package main

import "github.com/mkleven/puckcal/internal/cli"

func main() {
	cli.Execute()
}
