package main

import "github.com/fakeyudi/aura/cmd"

func main() {
	cmd.Execute()
}
