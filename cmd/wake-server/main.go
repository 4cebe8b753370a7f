package main

import "github.com/cafe-electronico/wake-monitor/cmd/wake-server/cmd"

func main() {
	cmd.Execute()
}
