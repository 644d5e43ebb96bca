package main

import "library-catalog/cli"

func main() {
	cli.Execute()
}
