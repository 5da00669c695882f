package main

import "gasplit/internal/cli"

func main() {
	cli.Execute()
}
