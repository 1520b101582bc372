package main

import "github.com/curio-cli/curio/cmd"

func main() {
	cmd.Execute()
}
