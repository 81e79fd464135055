package main

import "github.com/todo-cli/todo/cmd"

func main() {
	cmd.Execute()
}
