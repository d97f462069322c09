package main

import "github.com/luthersystems/elps-reader/cmd"

func main() {
	cmd.Execute()
}
