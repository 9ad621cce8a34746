package main

import "bookworm/cmd/cli/command"

func main() {
	command.Execute()
}
