package main

import "github.com/openmcu/gecko/geckotool/cmd"

func main() {
	cmd.Execute()
}
