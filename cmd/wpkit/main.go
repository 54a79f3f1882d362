package main

import "github.com/myrinnew/wpkit/internal/cli"

func main() {
	cli.Execute()
}
