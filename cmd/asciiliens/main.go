package main

import "github.com/tatianab/asciiliens/internal/cli"

func main() {
	cli.Execute()
}
