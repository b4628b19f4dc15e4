package main

import "flowpathc/cmd"

func main() {
	cmd.Execute()
}
