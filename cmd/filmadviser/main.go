package main

import "filmadviser/cmd/filmadviser/commands"

func main() {
	commands.Execute()
}
