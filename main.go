package main

import "which-llm/cmd"

func main() {
	cmd.Execute()
}
