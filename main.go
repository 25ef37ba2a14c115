package main

import "github.com/they4kman/golightsout/cmd"

func main() {
	cmd.Execute()
}
