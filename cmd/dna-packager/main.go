package main

import "dna-sequence-pro/internal/cli"

func main() {
	cli.ExecutePackager()
}
