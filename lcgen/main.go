package main

import (
	"github.com/tutils/lcgen/cmd"
)

func main() {
	cmd.Execute()
}
