package main

import "github.com/cafe-electronico/wake-monitor/cmd/wake-watcher/cmd"

func main() {
	cmd.Execute()
}
