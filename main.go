package main

import "github.com/orbitwatch/neoscan-cli/cmd"

func main() {
	cmd.Execute()
}
