package main

import (
	"github.com/jjtimmons/hspbed/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
