package main

import (
	"github.com/cvisb/abstar/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
