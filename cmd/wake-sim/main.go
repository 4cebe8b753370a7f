package main

import "github.com/cafe-electronico/wake-monitor/cmd/wake-sim/cmd"

func main() {
	cmd.Execute()
}
