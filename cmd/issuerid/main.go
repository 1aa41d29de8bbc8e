package main

import "github.com/axent-pl/issuerid/internal/cli"

func main() {
	cli.Execute()
}
