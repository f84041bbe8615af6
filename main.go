package main

import "github.com/garbagetrash/risp/cmd"

func main() {
	cmd.Execute()
}
