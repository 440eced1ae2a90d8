package main

import (
	"github.com/Mvgnu/BioLabs-sub002/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
