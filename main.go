package main

import "github.com/rook-computer/glassicon/cmd"

func main() {
	cmd.Execute()
}
