package main

import "github.com/Brandhoej/perfdar/cmd/perfdar/cmd"

func main() {
	cmd.Execute()
}
