package main

import "github.com/aalvaropc/commonmeta/internal/cli"

func main() {
	cli.Execute()
}
