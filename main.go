package main

import "github.com/andrewpaige1/studyset-web/cmd"

func main() {
	cmd.Execute()
}
